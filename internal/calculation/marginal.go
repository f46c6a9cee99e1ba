package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MarginalTax applies the bracket rows for (state, year, status) to taxable income.
//
// Brackets entirely below the income are taxed over their full width; the bracket that
// contains the income is taxed on the remainder and the walk stops there. No matching
// rows yields an empty result with zero tax. Negative income is treated as zero.
func (t *BracketTable) MarginalTax(year int, state string, taxableIncome decimal.Decimal, status domain.FilingStatus) domain.MarginalTaxResult {
	result := domain.MarginalTaxResult{
		Year:         year,
		State:        normalizeState(state),
		FilingStatus: status,
		Taxes:        []domain.BracketTax{},
		TotalTax:     decimal.Zero,
	}

	income := money.Floor0(taxableIncome)
	for _, bracket := range t.Rows(state, year, status) {
		if income.LessThanOrEqual(bracket.MinIncome) {
			break
		}

		var taxed decimal.Decimal
		done := bracket.Unbounded() || income.LessThanOrEqual(bracket.MaxIncome)
		if done {
			taxed = income.Sub(bracket.MinIncome)
		} else {
			taxed = bracket.MaxIncome.Sub(bracket.MinIncome)
		}

		tax := taxed.Mul(bracket.Rate)
		result.Taxes = append(result.Taxes, domain.BracketTax{Rate: bracket.Rate, AmountTaxed: taxed, Tax: tax})
		result.TotalTax = result.TotalTax.Add(tax)

		if done {
			break
		}
	}
	return result
}
