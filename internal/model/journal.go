package model

import "time"

// RecommendationRecord is one journaled recommendation
type RecommendationRecord struct {
	ID          string      `json:"id" db:"id"`
	Preferences Preferences `json:"preferences" db:"-"`
	ModelID     string      `json:"model_id" db:"model_id"`
	Analysis    string      `json:"analysis" db:"analysis"`
	// Scores are the normalized match scores in catalog order
	Scores    []float32 `json:"scores" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AdjustmentRecord is one journaled deal adjustment
type AdjustmentRecord struct {
	ID             string    `json:"id" db:"id"`
	ModelID        string    `json:"model_id" db:"model_id"`
	TotalPrice     float64   `json:"total_price" db:"total_price"`
	Budget         float64   `json:"budget" db:"budget"`
	MonthlyPayment float64   `json:"monthly_payment" db:"monthly_payment"`
	ShouldUpsell   bool      `json:"should_upsell" db:"should_upsell"`
	ShouldDownsell bool      `json:"should_downsell" db:"should_downsell"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
