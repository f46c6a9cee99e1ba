package calculation

import (
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
)

var eightyPercent = decimal.NewFromFloat(0.80)

// NOLDeductionLimit returns how much of an available NOL carryover may be deducted in
// taxYear. Losses arising after 2017 are capped at 80% of taxable income before the NOL
// deduction in years after 2020; older losses may offset all of it.
func NOLDeductionLimit(taxYear, lossYear int, taxableIncomeBeforeNOL, available decimal.Decimal) decimal.Decimal {
	income := money.Floor0(taxableIncomeBeforeNOL)
	limit := income
	if taxyear.EightyPercentLimitApplies(taxYear, lossYear) {
		limit = income.Mul(eightyPercent).Round(2)
	}
	return decimal.Min(money.Floor0(available), limit)
}
