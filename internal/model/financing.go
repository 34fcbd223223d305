package model

// Finance types accepted by the financing calculator
const (
	FinanceTypeFinance = "finance"
	FinanceTypeLease   = "lease"
)

// FinancingRequest is the body of POST /api/financing/quote. Zero-valued
// optional fields take the financing stage defaults.
type FinancingRequest struct {
	FinanceType  string   `json:"financeType,omitempty"`
	Price        float64  `json:"price" binding:"required"`
	DownPayment  *float64 `json:"downPayment,omitempty"`
	TermMonths   int      `json:"loanTerm,omitempty"`
	InterestRate *float64 `json:"interestRate,omitempty"`
	CreditScore  *int     `json:"creditScore,omitempty"`
}

// FinancingQuote is the computed payment plan
type FinancingQuote struct {
	FinanceType    string  `json:"financeType"`
	Price          float64 `json:"price"`
	DownPayment    float64 `json:"downPayment"`
	TermMonths     int     `json:"loanTerm"`
	InterestRate   float64 `json:"interestRate"`
	MonthlyPayment int64   `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
	CreditTier     string  `json:"creditTier,omitempty"`
}

// CustomizationRequest is the body of POST /api/customization/price
type CustomizationRequest struct {
	ModelID   string   `json:"modelId" binding:"required"`
	PackageID string   `json:"packageId,omitempty"`
	ColorID   string   `json:"colorId,omitempty"`
	Extras    []string `json:"extras,omitempty"`
}

// PricedItem is one line of a customization quote
type PricedItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CustomizationQuote is the priced configuration
type CustomizationQuote struct {
	ModelID    string       `json:"modelId"`
	Model      string       `json:"model"`
	BasePrice  float64      `json:"basePrice"`
	Color      *PricedItem  `json:"color,omitempty"`
	Package    PricedItem   `json:"package"`
	Extras     []PricedItem `json:"extras"`
	TotalPrice float64      `json:"totalPrice"`
}
