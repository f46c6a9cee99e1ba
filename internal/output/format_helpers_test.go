package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(1234.567), "$1,234.57"},
		{decimal.NewFromInt(-3000), "($3,000.00)"},
		{decimal.Zero, "$0.00"},
		{decimal.NewFromInt(1050000), "$1,050,000.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	if got, want := FormatAmount(decimal.NewFromInt(-95000)), "-95000.00"; got != want {
		t.Errorf("FormatAmount = %q, want %q", got, want)
	}
}
