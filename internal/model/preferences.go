package model

import (
	"bytes"
	"encoding/json"
)

// Preferences are the answers collected by the wizard. Every field is
// optional; absent text fields behave as empty strings.
type Preferences struct {
	Usage       string `json:"usage,omitempty"`
	Lifestyle   string `json:"lifestyle,omitempty"`
	Location    string `json:"location,omitempty"`
	Budget      Amount `json:"budget"`
	CreditScore Amount `json:"creditScore"`
}

// UnmarshalJSON accepts any JSON value for the text fields. Strings are
// taken as-is, null means empty, and numbers, booleans, objects and arrays
// keep their raw JSON text.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var aux struct {
		Usage       json.RawMessage `json:"usage"`
		Lifestyle   json.RawMessage `json:"lifestyle"`
		Location    json.RawMessage `json:"location"`
		Budget      Amount          `json:"budget"`
		CreditScore Amount          `json:"creditScore"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*p = Preferences{
		Usage:       looseText(aux.Usage),
		Lifestyle:   looseText(aux.Lifestyle),
		Location:    looseText(aux.Location),
		Budget:      aux.Budget,
		CreditScore: aux.CreditScore,
	}
	return nil
}

func looseText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// RecommendRequest is the body of POST /api/recommend-model
type RecommendRequest struct {
	Preferences *Preferences `json:"preferences"`
}

// Recommendation is the response of POST /api/recommend-model.
// Model and the MatchScores keys are display names.
type Recommendation struct {
	Model       string         `json:"model"`
	ModelID     string         `json:"modelId"`
	Analysis    string         `json:"analysis"`
	MatchScores map[string]int `json:"matchScores"`
}
