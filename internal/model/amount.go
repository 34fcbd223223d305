package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Amount is a loosely typed money value as sent by the wizard: a JSON number,
// a formatted string such as "$45,000", or absent/null.
type Amount struct {
	number *float64
	text   *string
}

// NumberAmount wraps a numeric value
func NumberAmount(v float64) Amount { return Amount{number: &v} }

// TextAmount wraps a textual value
func TextAmount(s string) Amount { return Amount{text: &s} }

// IsSet reports whether any value was supplied
func (a Amount) IsSet() bool { return a.number != nil || a.text != nil }

// Number returns the numeric form, if the value was sent as a number
func (a Amount) Number() (float64, bool) {
	if a.number == nil {
		return 0, false
	}
	return *a.number, true
}

// Text returns the textual form. Numbers are rendered without exponent.
func (a Amount) Text() string {
	switch {
	case a.number != nil:
		return strconv.FormatFloat(*a.number, 'f', -1, 64)
	case a.text != nil:
		return *a.text
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.text = &s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		a.number = &f
	default:
		// booleans, objects and arrays keep their raw text and fail parsing later
		s := string(data)
		a.text = &s
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	switch {
	case a.number != nil:
		return json.Marshal(*a.number)
	case a.text != nil:
		return json.Marshal(*a.text)
	}
	return []byte("null"), nil
}
