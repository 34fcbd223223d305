package service

import (
	"errors"
	"math"

	"dreamtrip/internal/model"
	"dreamtrip/internal/utils"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for absent or non-numeric amounts
var ErrInvalidAmount = errors.New("amount is missing or not numeric")

// ParseAmount turns a loosely typed money value into a float.
//
// Numbers are used as-is, negative ones included. Strings keep only
// their digits and dots before parsing, so "$45,000" and "45000.00abc" both
// parse; a string with no digits left, or with more than one dot, is
// ErrInvalidAmount. Absent values are ErrInvalidAmount too.
func ParseAmount(a model.Amount) (float64, error) {
	if n, ok := a.Number(); ok {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, ErrInvalidAmount
		}
		return n, nil
	}

	cleaned := utils.KeepNumeric(a.Text())
	if !utils.HasDigit(cleaned) {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	return f, nil
}

// amountOrZero applies the deal calculator's logical-OR fallback: anything
// unparsable, and zero itself, becomes 0.
func amountOrZero(a model.Amount) float64 {
	v, err := ParseAmount(a)
	if err != nil {
		return 0
	}
	return v
}

// roundHalfUp rounds to the nearest integer with halves going towards
// positive infinity, matching the wizard's client-side rounding.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
