package model

import (
	"bytes"
	"encoding/json"
)

// SelectedModel is the vehicle chosen in the comparison stage. Older clients
// send only the model id as a bare string.
type SelectedModel struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Price Amount `json:"price"`

	// Legacy is set when the value arrived as a bare string
	Legacy bool `json:"-"`
}

// UnmarshalJSON accepts both the object and the legacy string form
func (s *SelectedModel) UnmarshalJSON(data []byte) error {
	*s = SelectedModel{}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		s.ID = id
		s.Legacy = true
		return nil
	}

	type plain SelectedModel
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SelectedModel(p)
	return nil
}

// Customization carries the configured total; the rest of the stage payload
// (color, package, extras) is ignored here.
type Customization struct {
	TotalPrice Amount `json:"totalPrice"`
}

// Financing carries the payment computed in the financing stage
type Financing struct {
	FinanceType    string `json:"financeType,omitempty"`
	MonthlyPayment Amount `json:"monthlyPayment"`
	LoanTerm       int    `json:"loanTerm,omitempty"`
}

// JourneyData is the accumulated wizard state sent to the deal endpoint
type JourneyData struct {
	SelectedModel *SelectedModel `json:"selectedModel"`
	Customization *Customization `json:"customization"`
	Preferences   *Preferences   `json:"preferences"`
	Financing     *Financing     `json:"financing"`
}

// DealRequest is the body of POST /api/recommendations
type DealRequest struct {
	JourneyData *JourneyData `json:"journeyData"`
}

// UpsellOption is offered when the budget leaves room for a premium package
type UpsellOption struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AdditionalCost float64  `json:"additional_cost"`
	NewMonthly     int64    `json:"new_monthly"`
	Benefits       []string `json:"benefits"`
}

// DownsellOption is offered when the configured price exceeds the budget
type DownsellOption struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Savings     float64  `json:"savings"`
	NewMonthly  int64    `json:"new_monthly"`
	Benefits    []string `json:"benefits"`
}

// DealAdjustment is the response of POST /api/recommendations. The two
// flags are computed independently of each other.
type DealAdjustment struct {
	ShouldUpsell   bool            `json:"should_upsell"`
	ShouldDownsell bool            `json:"should_downsell"`
	UpsellOption   *UpsellOption   `json:"upsell_option"`
	DownsellOption *DownsellOption `json:"downsell_option"`
}
