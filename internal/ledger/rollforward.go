package ledger

import (
	"fmt"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
)

// ProposeRollforward builds the next year's record from a year's record and its
// computed forms. Nothing is written; the caller persists the proposal once an
// operator confirms it.
//
// The year's excess business loss (Form 461 line 16) joins the NOL available next year.
// When partII is given, its line 10 replaces the record's own NOL carryover. A carryover
// outside the 80% limit is deducted in full before the year's own loss is limited against
// the income it leaves; layers under the same rule share one NOLDeductionLimit. The record
// keeps one loss year, so whatever remains is labelled with the oldest unabsorbed layer.
func ProposeRollforward(prev domain.LedgerRecord, f461 domain.Form461Result, partII *domain.Form172PartIIResult, nextTaxableIncome decimal.Decimal) domain.LedgerRecord {
	next := domain.LedgerRecord{
		InterestID:       prev.InterestID,
		TaxYear:          prev.TaxYear + 1,
		AtRiskCarryover:  prev.AtRiskCarryover,
		PassiveCarryover: prev.PassiveCarryover,
		Source:           domain.LedgerSourceComputed,
	}

	carried := prev.NOLCarryover
	if partII != nil {
		carried = partII.Line10
	}
	carried = money.Floor0(carried)
	ebl := money.Floor0(f461.Line16)

	// a carryover with no recorded loss year is treated as arising in prev.TaxYear
	carriedYear := prev.NOLLossYear
	if carriedYear == 0 {
		carriedYear = prev.TaxYear
	}

	available := carried.Add(ebl)
	if taxyear.EightyPercentLimitApplies(next.TaxYear, carriedYear) == taxyear.EightyPercentLimitApplies(next.TaxYear, prev.TaxYear) {
		// both layers fall under the same rule and share one limit
		next.NOLDeduction = calculation.NOLDeductionLimit(next.TaxYear, carriedYear, nextTaxableIncome, available)
	} else {
		// the older carryover offsets income in full before the new loss is limited
		older := calculation.NOLDeductionLimit(next.TaxYear, carriedYear, nextTaxableIncome, carried)
		newer := calculation.NOLDeductionLimit(next.TaxYear, prev.TaxYear, nextTaxableIncome.Sub(older), ebl)
		next.NOLDeduction = older.Add(newer)
	}
	next.NOLCarryover = available.Sub(next.NOLDeduction)

	// the carried layer is absorbed first
	carriedDeduction := decimal.Min(carried, next.NOLDeduction)

	switch {
	case carried.GreaterThan(carriedDeduction):
		next.NOLLossYear = carriedYear
	case ebl.IsPositive():
		next.NOLLossYear = prev.TaxYear
	case carried.IsPositive():
		next.NOLLossYear = carriedYear
	}

	next.Notes = fmt.Sprintf("rolled forward from %d: carryover %s, excess business loss %s",
		prev.TaxYear, money.NewMoneyFromDecimal(carried).Format(), money.NewMoneyFromDecimal(ebl).Format())
	return next
}
