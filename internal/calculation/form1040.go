package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
)

// CalculateForm1040 runs Schedule D, then Schedule 1 (which runs Form 461 with the
// Schedule D result), and combines them with the direct income lines into total income,
// AGI and taxable income.
//
// Lines 16-38 are plain sums of caller inputs; tax on line 15 is not computed here.
// Form 172 is computed from in.NOL and embedded, but its NOL is never applied to
// Schedule 1 line 8a.
//
// The filing status yields one isSingle flag shared by Schedule D, Form 461 and
// Form 172 Part I.
func CalculateForm1040(in domain.Form1040Input) domain.Form1040Result {
	isSingle := !in.FilingStatus.UsesJointThreshold()

	schD := CalculateScheduleD(domain.ScheduleDInput{
		ScheduleDLines: in.ScheduleD,
		IsSingle:       isSingle,
	})

	sch1 := CalculateSchedule1(domain.Schedule1Input{
		Schedule1Lines:         in.Schedule1,
		ScheduleD:              &schD,
		TaxYear:                in.TaxYear,
		IsSingle:               isSingle,
		ThresholdOverride:      in.ThresholdOverride,
		CostOfLivingAdjustment: in.CostOfLivingAdjustment,
	})

	r := domain.Form1040Result{
		TaxYear:      in.TaxYear,
		FilingStatus: in.FilingStatus,

		Line1a: in.Wages,
		Line2a: in.TaxExemptInterest,
		Line2b: in.TaxableInterest,
		Line3a: in.QualifiedDividends,
		Line3b: in.OrdinaryDividends,
		Line4a: in.IRADistributions,
		Line4b: in.TaxableIRA,
		Line5a: in.Pensions,
		Line5b: in.TaxablePensions,
		Line6a: in.SocialSecurity,
		Line6b: in.TaxableSocialSecurity,
		Line7:  schD.Line21,
		Line8:  sch1.Line10,

		Schedule1: sch1,
		ScheduleD: schD,
		Form172:   CalculateForm172(nolForFilingStatus(in.NOL, isSingle)),
	}

	r.Line1z = in.Wages.Add(in.OtherEarnedIncome)
	r.Line9 = money.Sum(r.Line1z, r.Line2b, r.Line3b, r.Line4b, r.Line5b, r.Line6b, r.Line7, r.Line8)
	r.Line10 = sch1.Line26
	r.Line11 = r.Line9.Sub(r.Line10)
	r.Line12 = in.StandardDeduction
	r.Line13 = in.QBIDeduction
	r.Line14 = r.Line12.Add(r.Line13)
	r.Line15 = money.Excess(r.Line11, r.Line14)

	r.Line16 = in.Tax
	r.Line17 = in.Schedule2Line3
	r.Line18 = r.Line16.Add(r.Line17)
	r.Line19 = in.ChildTaxCredit
	r.Line20 = in.Schedule3Line8
	r.Line21 = r.Line19.Add(r.Line20)
	r.Line22 = money.Excess(r.Line18, r.Line21)
	r.Line23 = in.OtherTaxes
	r.Line24 = r.Line22.Add(r.Line23)

	r.Line25a = in.W2Withholding
	r.Line25b = in.Form1099Withholding
	r.Line25c = in.OtherWithholding
	r.Line25d = money.Sum(r.Line25a, r.Line25b, r.Line25c)
	r.Line26 = in.EstimatedPayments
	r.Line27 = in.EarnedIncomeCredit
	r.Line28 = in.AdditionalChildTaxCredit
	r.Line29 = in.AmericanOpportunityCredit
	r.Line31 = in.Schedule3Line15
	r.Line32 = money.Sum(r.Line27, r.Line28, r.Line29, r.Line31)
	r.Line33 = money.Sum(r.Line25d, r.Line26, r.Line32)

	r.Line34 = money.Excess(r.Line33, r.Line24)
	r.Line36 = in.AppliedToNextYear
	// refund is never negative when more than the overpayment is applied to next year
	r.Line35a = money.Excess(r.Line34, r.Line36)
	r.Line37 = money.Excess(r.Line24, r.Line33)
	r.Line38 = in.EstimatedTaxPenalty
	return r
}

// nolForFilingStatus copies the Form 172 input with Part I's isSingle taken from the return
func nolForFilingStatus(nol domain.Form172Input, isSingle bool) domain.Form172Input {
	if nol.PartI != nil {
		partI := *nol.PartI
		partI.IsSingle = isSingle
		nol.PartI = &partI
	}
	return nol
}
