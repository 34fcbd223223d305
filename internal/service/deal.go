package service

import (
	"math"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"
)

// Static upsell/downsell payloads
const (
	UpsellTitle         = "Premium Upgrade Package"
	UpsellDescription   = "Enhance your experience with premium features and upgrades"
	DownsellTitle       = "Smart Savings Option"
	DownsellDescription = "Get the same great experience while staying within your budget"
)

var (
	upsellBenefits = []string{
		"Premium sound system upgrade",
		"Advanced safety features",
		"Extended warranty coverage",
		"Premium interior materials",
	}
	downsellBenefits = []string{
		"Same reliable performance",
		"Essential features included",
		"Lower monthly payments",
		"Better budget alignment",
	}
)

// DealPolicy holds the thresholds of the deal adjustment rule. The reference
// term is applied regardless of the loan term the user picked.
type DealPolicy struct {
	UpsellThreshold     float64
	UpsellCap           float64
	DownsellThreshold   float64
	DownsellCap         float64
	ReferenceTermMonths int
}

// DefaultDealPolicy returns the stock thresholds
func DefaultDealPolicy() DealPolicy {
	return DealPolicy{
		UpsellThreshold:     5000,
		UpsellCap:           10000,
		DownsellThreshold:   3000,
		DownsellCap:         8000,
		ReferenceTermMonths: 60,
	}
}

// DealInputs are the resolved numbers the rule works on
type DealInputs struct {
	ModelID        string
	TotalPrice     float64
	Budget         float64
	MonthlyPayment float64
}

// DealCalculator decides between upsell and downsell offers
type DealCalculator struct {
	policy  DealPolicy
	catalog *catalog.Catalog
}

// NewDealCalculator creates a calculator. cat resolves legacy string model
// references to a price and may be nil.
func NewDealCalculator(policy DealPolicy, cat *catalog.Catalog) *DealCalculator {
	if policy.ReferenceTermMonths <= 0 {
		policy.ReferenceTermMonths = DefaultDealPolicy().ReferenceTermMonths
	}
	return &DealCalculator{policy: policy, catalog: cat}
}

// Resolve applies the fallbacks: total = customization total, else model
// price, else 0; budget and monthly payment default to 0.
func (d *DealCalculator) Resolve(j *model.JourneyData) DealInputs {
	var in DealInputs
	if j == nil {
		return in
	}

	var modelPrice float64
	if sm := j.SelectedModel; sm != nil {
		in.ModelID = sm.ID
		modelPrice = amountOrZero(sm.Price)
		if modelPrice == 0 && d.catalog != nil {
			ref := sm.ID
			if ref == "" {
				ref = sm.Name
			}
			if m, ok := d.catalog.Resolve(ref); ok {
				in.ModelID = m.ID
				modelPrice = m.Price
			}
		}
	}

	if j.Customization != nil {
		in.TotalPrice = amountOrZero(j.Customization.TotalPrice)
	}
	if in.TotalPrice == 0 {
		in.TotalPrice = modelPrice
	}
	if j.Preferences != nil {
		in.Budget = amountOrZero(j.Preferences.Budget)
	}
	if j.Financing != nil {
		in.MonthlyPayment = amountOrZero(j.Financing.MonthlyPayment)
	}
	return in
}

// Compute resolves j and applies the deal rule
func (d *DealCalculator) Compute(j *model.JourneyData) (*model.DealAdjustment, DealInputs) {
	in := d.Resolve(j)
	return d.Adjust(in.TotalPrice, in.Budget, in.MonthlyPayment), in
}

// Adjust applies the deal rule. Upsell and downsell are evaluated
// independently; the opposing guards keep them from both firing.
func (d *DealCalculator) Adjust(totalPrice, budget, monthlyPayment float64) *model.DealAdjustment {
	term := float64(d.policy.ReferenceTermMonths)

	res := &model.DealAdjustment{
		ShouldUpsell:   budget > totalPrice && budget-totalPrice > d.policy.UpsellThreshold,
		ShouldDownsell: totalPrice > budget && totalPrice-budget > d.policy.DownsellThreshold,
	}

	if res.ShouldUpsell {
		additional := math.Min(d.policy.UpsellCap, budget-totalPrice)
		res.UpsellOption = &model.UpsellOption{
			Title:          UpsellTitle,
			Description:    UpsellDescription,
			AdditionalCost: additional,
			NewMonthly:     roundHalfUp(monthlyPayment + additional/term),
			Benefits:       append([]string(nil), upsellBenefits...),
		}
	}

	if res.ShouldDownsell {
		savings := math.Min(d.policy.DownsellCap, totalPrice-budget)
		res.DownsellOption = &model.DownsellOption{
			Title:       DownsellTitle,
			Description: DownsellDescription,
			Savings:     savings,
			NewMonthly:  roundHalfUp(monthlyPayment - savings/term),
			Benefits:    append([]string(nil), downsellBenefits...),
		}
	}

	return res
}
