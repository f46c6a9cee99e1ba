package calculation

import (
	"testing"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginalTaxFederal2024Single(t *testing.T) {
	table := DefaultBracketTable()

	result := table.MarginalTax(2024, "", dec(50000), domain.FilingSingle)

	require.Len(t, result.Taxes, 3)
	assertDecimal(t, dec(1160), result.Taxes[0].Tax, "10% bracket")
	assertDecimal(t, dec(4266), result.Taxes[1].Tax, "12% bracket")
	assertDecimal(t, dec(627), result.Taxes[2].Tax, "22% bracket")
	assertDecimal(t, dec(2850), result.Taxes[2].AmountTaxed, "22% amount")
	assertDecimal(t, dec(6053), result.TotalTax, "total")
}

func TestMarginalTax(t *testing.T) {
	table := DefaultBracketTable()

	tests := []struct {
		name          string
		year          int
		state         string
		income        decimal.Decimal
		status        domain.FilingStatus
		expectedTax   decimal.Decimal
		expectedRates int
	}{
		{name: "zero income", year: 2024, income: decimal.Zero, status: domain.FilingSingle, expectedTax: decimal.Zero},
		{name: "negative income treated as zero", year: 2024, income: dec(-5000), status: domain.FilingSingle, expectedTax: decimal.Zero},
		{name: "exactly at first breakpoint", year: 2024, income: dec(11600), status: domain.FilingSingle, expectedTax: dec(1160), expectedRates: 1},
		{name: "joint 2024", year: 2024, income: dec(50000), status: domain.FilingJoint, expectedTax: dec(5536), expectedRates: 2},
		{name: "surviving spouse uses joint rows", year: 2024, income: dec(50000), status: domain.FilingSurvivingSpouse, expectedTax: dec(5536), expectedRates: 2},
		{name: "single 2024 taxable 85400", year: 2024, income: dec(85400), status: domain.FilingSingle, expectedTax: dec(13841), expectedRates: 3},
		{name: "pennsylvania flat", year: 2024, state: "pa", income: dec(50000), status: domain.FilingSingle, expectedTax: dec(1535), expectedRates: 1},
		{name: "year without rows", year: 2030, income: dec(50000), status: domain.FilingSingle, expectedTax: decimal.Zero},
		{name: "unknown state", year: 2024, state: "ZZ", income: dec(50000), status: domain.FilingSingle, expectedTax: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := table.MarginalTax(tt.year, tt.state, tt.income, tt.status)
			assertDecimal(t, tt.expectedTax, result.TotalTax, "total tax")
			assert.Len(t, result.Taxes, tt.expectedRates)
			assert.NotNil(t, result.Taxes)
		})
	}
}

func TestMarginalTaxTopBracket(t *testing.T) {
	table := DefaultBracketTable()
	income := dec(1000000)

	result := table.MarginalTax(2025, "", income, domain.FilingSingle)

	require.Len(t, result.Taxes, 7)
	assert.True(t, result.Taxes[6].Rate.Equal(decimal.NewFromFloat(0.37)))

	taxed := decimal.Zero
	for _, b := range result.Taxes {
		taxed = taxed.Add(b.AmountTaxed)
	}
	assertDecimal(t, income, taxed, "amount taxed across brackets")
}

func TestBracketTableMerge(t *testing.T) {
	custom := NewBracketTable([]domain.BracketRow{
		{State: "pa", Year: 2024, FilingStatus: domain.FilingSingle, MinIncome: decimal.Zero, Rate: decimal.NewFromFloat(0.05)},
	})

	merged := DefaultBracketTable().Merge(custom)

	rows := merged.Rows("PA", 2024, domain.FilingSingle)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Rate.Equal(decimal.NewFromFloat(0.05)))

	// other keys are untouched
	assert.Len(t, merged.Rows("PA", 2024, domain.FilingJoint), 1)
	assert.Len(t, merged.Rows("", 2024, domain.FilingSingle), 7)
	assert.Equal(t, []int{2023, 2024, 2025}, merged.Years("PA"))
}

func TestEffectiveRate(t *testing.T) {
	result := DefaultBracketTable().MarginalTax(2024, "", dec(50000), domain.FilingSingle)

	assertDecimal(t, decimal.RequireFromString("0.12106"), result.EffectiveRate(dec(50000)), "effective rate")
	assert.True(t, result.EffectiveRate(decimal.Zero).IsZero())
}
