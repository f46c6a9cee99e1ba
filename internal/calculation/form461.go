package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CalculateForm461 figures the excess business loss.
//
// Line 6 and line 10 come from the Schedule D result when one is supplied; otherwise the
// legacy capital gain inputs are used. Line 16 is the disallowed loss as a non-negative
// magnitude: only the part of line 14 below the negated threshold is disallowed.
func CalculateForm461(in domain.Form461Input) domain.Form461Result {
	r := domain.Form461Result{
		Line2: in.OtherGains,
		Line3: in.BusinessIncome,
		Line4: in.RentalIncome,
		Line5: in.FarmIncome,
		Line7: in.OtherTradeOrBusiness,
		Line8: decimal.Zero,
	}

	if in.ScheduleD != nil {
		r.Line6 = in.ScheduleD.Line21
		r.Line10 = in.ScheduleD.LimitedPersonal
	} else {
		r.Line6 = in.CapitalGain
		r.Line10 = in.NonBusinessCapitalGain
	}

	r.Line9 = money.Sum(r.Line2, r.Line3, r.Line4, r.Line5, r.Line6, r.Line7, r.Line8)
	r.Line11 = in.NonBusinessDeduction
	r.Line12 = r.Line10.Sub(r.Line11)
	r.Line13 = r.Line12.Neg()
	r.Line14 = r.Line9.Add(r.Line13)

	if in.ThresholdOverride.IsPositive() {
		r.Line15 = in.ThresholdOverride
	} else {
		r.Line15 = ExcessBusinessLossThreshold(ThresholdQuery{
			TaxYear:                in.TaxYear,
			IsSingle:               in.IsSingle,
			CostOfLivingAdjustment: in.CostOfLivingAdjustment,
		})
	}

	r.Line16 = money.Ceil0(r.Line14.Add(r.Line15)).Abs()
	return r
}
