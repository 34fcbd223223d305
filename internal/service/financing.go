package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"dreamtrip/internal/model"

	"github.com/shopspring/decimal"
)

const (
	MaxTermMonths       = 600
	MaxInterestRate     = 100.0
	LeaseResidualRatio  = 0.5
	DefaultTermMonths   = 60
	DefaultInterestRate = 4.5
	DefaultDownRatio    = 0.2
)

// Financing validation errors
var (
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrInvalidTerm        = errors.New("invalid loan term")
	ErrInvalidDownPayment = errors.New("down payment must be between zero and the price")
	ErrInvalidRate        = errors.New("invalid interest rate")
	ErrInvalidFinanceType = errors.New("finance type must be finance or lease")
)

// AmortizedPayment is the fixed-rate installment for principal over term
// months at apr percent. A zero rate degrades to principal/term.
func AmortizedPayment(principal, apr float64, term int) float64 {
	n := float64(term)
	r := apr / 100 / 12
	if r == 0 {
		return principal / n
	}
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// LeasePayment approximates a lease as depreciation to a 50% residual plus
// a finance charge on price and residual.
func LeasePayment(price, apr float64, term int) float64 {
	residual := price * LeaseResidualRatio
	r := apr / 100 / 12
	return (price-residual)/float64(term) + (price+residual)*r
}

// CreditTier labels a credit score the way the budget stage does
func CreditTier(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 700:
		return "Good"
	case score >= 650:
		return "Fair"
	}
	return "Poor"
}

// FinancingCalculator produces payment quotes
type FinancingCalculator struct{}

// NewFinancingCalculator creates a financing calculator
func NewFinancingCalculator() *FinancingCalculator {
	return &FinancingCalculator{}
}

// Quote validates req, applies the stage defaults and computes the plan
func (f *FinancingCalculator) Quote(req model.FinancingRequest) (*model.FinancingQuote, error) {
	financeType := strings.ToLower(strings.TrimSpace(req.FinanceType))
	if financeType == "" {
		financeType = model.FinanceTypeFinance
	}
	if financeType != model.FinanceTypeFinance && financeType != model.FinanceTypeLease {
		return nil, ErrInvalidFinanceType
	}

	if req.Price <= 0 || math.IsInf(req.Price, 0) {
		return nil, ErrInvalidPrice
	}

	term := req.TermMonths
	if term == 0 {
		term = DefaultTermMonths
	}
	if term < 0 || term > MaxTermMonths {
		return nil, fmt.Errorf("%w: must be between 1 and %d months", ErrInvalidTerm, MaxTermMonths)
	}

	apr := DefaultInterestRate
	if req.InterestRate != nil {
		apr = *req.InterestRate
	}
	if apr < 0 || apr > MaxInterestRate {
		return nil, fmt.Errorf("%w: must be between 0 and %.0f%%", ErrInvalidRate, MaxInterestRate)
	}

	down := math.Round(req.Price * DefaultDownRatio)
	if req.DownPayment != nil {
		down = *req.DownPayment
	}
	if down < 0 || down > req.Price {
		return nil, ErrInvalidDownPayment
	}

	quote := &model.FinancingQuote{
		FinanceType:  financeType,
		Price:        req.Price,
		TermMonths:   term,
		InterestRate: apr,
	}

	var monthlyTotal decimal.Decimal
	switch financeType {
	case model.FinanceTypeLease:
		quote.MonthlyPayment = roundHalfUp(LeasePayment(req.Price, apr, term))
		monthlyTotal = decimal.NewFromInt(quote.MonthlyPayment).Mul(decimal.NewFromInt(int64(term)))
		quote.TotalPaid = monthlyTotal.InexactFloat64()
	default:
		quote.DownPayment = down
		quote.MonthlyPayment = roundHalfUp(AmortizedPayment(req.Price-down, apr, term))
		monthlyTotal = decimal.NewFromInt(quote.MonthlyPayment).Mul(decimal.NewFromInt(int64(term)))
		quote.TotalPaid = monthlyTotal.Add(decimal.NewFromFloat(down)).InexactFloat64()
		quote.TotalInterest = math.Max(0, monthlyTotal.Sub(decimal.NewFromFloat(req.Price-down)).InexactFloat64())
	}

	if req.CreditScore != nil {
		quote.CreditTier = CreditTier(*req.CreditScore)
	}

	return quote, nil
}
