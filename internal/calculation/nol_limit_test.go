package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNOLDeductionLimit(t *testing.T) {
	tests := []struct {
		name      string
		taxYear   int
		lossYear  int
		income    decimal.Decimal
		available decimal.Decimal
		expected  decimal.Decimal
	}{
		{name: "post-2017 loss capped at 80%", taxYear: 2024, lossYear: 2022, income: dec(100000), available: dec(90000), expected: dec(80000)},
		{name: "available below cap", taxYear: 2024, lossYear: 2022, income: dec(100000), available: dec(50000), expected: dec(50000)},
		{name: "deduction year before 2021 is uncapped", taxYear: 2020, lossYear: 2018, income: dec(100000), available: dec(90000), expected: dec(90000)},
		{name: "pre-2018 loss offsets all income", taxYear: 2024, lossYear: 2016, income: dec(100000), available: dec(150000), expected: dec(100000)},
		{name: "negative income allows nothing", taxYear: 2024, lossYear: 2022, income: dec(-5000), available: dec(10000), expected: decimal.Zero},
		{name: "negative available allows nothing", taxYear: 2024, lossYear: 2022, income: dec(5000), available: dec(-10), expected: decimal.Zero},
		{name: "cap rounded to cents", taxYear: 2024, lossYear: 2023, income: decimal.RequireFromString("12345.67"), available: dec(20000), expected: decimal.RequireFromString("9876.54")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NOLDeductionLimit(tt.taxYear, tt.lossYear, tt.income, tt.available)
			assertDecimal(t, tt.expected, got, "limit")
		})
	}
}
