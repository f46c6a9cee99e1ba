package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
)

// CalculateSchedule1 computes Form 461 from the business lines and folds its excess
// business loss back in as line 8p alongside the caller-supplied NOL deduction.
func CalculateSchedule1(in domain.Schedule1Input) domain.Schedule1Result {
	l := in.Schedule1Lines

	f461 := CalculateForm461(domain.Form461Input{
		OtherGains:             l.OtherGains,
		BusinessIncome:         l.BusinessIncome,
		RentalIncome:           l.RentalIncome,
		FarmIncome:             l.FarmIncome,
		OtherTradeOrBusiness:   l.OtherTradeOrBusiness,
		ScheduleD:              in.ScheduleD,
		CapitalGain:            in.CapitalGain,
		NonBusinessCapitalGain: in.NonBusinessCapitalGain,
		NonBusinessDeduction:   l.NonBusinessDeduction,
		TaxYear:                in.TaxYear,
		IsSingle:               in.IsSingle,
		ThresholdOverride:      in.ThresholdOverride,
		CostOfLivingAdjustment: in.CostOfLivingAdjustment,
	})

	r := domain.Schedule1Result{
		Line1:  l.TaxableRefunds,
		Line2a: l.AlimonyReceived,
		Line3:  l.BusinessIncome,
		Line4:  l.OtherGains,
		Line5:  l.RentalIncome,
		Line6:  l.FarmIncome,
		Line7:  l.Unemployment,
		Line8a: l.NOLDeduction.Neg(),
		Line8b: l.GamblingIncome,
		Line8c: l.CancellationOfDebt,
		Line8p: f461.Line16,
		Line8z: l.OtherIncome,

		Line11: l.EducatorExpenses,
		Line13: l.HSADeduction,
		Line15: l.SelfEmploymentTaxDeduction,
		Line16: l.SEPSimpleContributions,
		Line17: l.SelfEmployedHealthInsurance,
		Line18: l.EarlyWithdrawalPenalty,
		Line20: l.IRADeduction,
		Line21: l.StudentLoanInterest,

		Form461: f461,
	}

	r.Line9 = money.Sum(r.Line8a, r.Line8b, r.Line8c, r.Line8p, r.Line8z)
	r.Line10 = money.Sum(r.Line1, r.Line2a, r.Line3, r.Line4, r.Line5, r.Line6, r.Line7, r.Line9)
	r.Line26 = money.Sum(r.Line11, r.Line13, r.Line15, r.Line16, r.Line17, r.Line18, r.Line20, r.Line21)
	return r
}
