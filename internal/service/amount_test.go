package service

import (
	"errors"
	"math"
	"testing"

	"dreamtrip/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      model.Amount
		want    float64
		wantErr error
	}{
		{name: "Formatted string", in: model.TextAmount("$45,000"), want: 45000},
		{name: "Number", in: model.NumberAmount(45000), want: 45000},
		{name: "Trailing junk", in: model.TextAmount("45000.00abc"), want: 45000},
		{name: "Decimal", in: model.TextAmount("29,999.99"), want: 29999.99},
		{name: "Zero number", in: model.NumberAmount(0), want: 0},
		{name: "Minus sign stripped from text", in: model.TextAmount("-500"), want: 500},
		{name: "Empty string", in: model.TextAmount(""), wantErr: ErrInvalidAmount},
		{name: "No digits", in: model.TextAmount("flexible"), wantErr: ErrInvalidAmount},
		{name: "Only dot", in: model.TextAmount("."), wantErr: ErrInvalidAmount},
		{name: "Two dots", in: model.TextAmount("1.2.3"), wantErr: ErrInvalidAmount},
		{name: "Absent", in: model.Amount{}, wantErr: ErrInvalidAmount},
		{name: "Negative number kept", in: model.NumberAmount(-1), want: -1},
		{name: "Infinite number", in: model.NumberAmount(math.Inf(1)), wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmount() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAmount_Idempotent(t *testing.T) {
	first, err := ParseAmount(model.TextAmount("$45,000"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseAmount(model.NumberAmount(first))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("reparsing changed the value: %v -> %v", first, second)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{516.666, 517},
		{566.666, 567},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0.49, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
