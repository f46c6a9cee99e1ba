package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	medicalFloorRate  = decimal.NewFromFloat(0.075)
	casualtyFloorRate = decimal.NewFromFloat(0.10)
)

// CalculateForm172 computes Part I when present and every Part II carryover year
func CalculateForm172(in domain.Form172Input) domain.Form172Result {
	var r domain.Form172Result
	if in.PartI != nil {
		p1 := CalculateForm172PartI(*in.PartI)
		r.Part1 = &p1
	}
	for _, p := range in.PartII {
		r.Part2 = append(r.Part2, CalculateForm172PartII(p))
	}
	return r
}

// CalculateForm172PartI figures the current-year net operating loss. Line 24 is left
// signed; a negative total is the NOL.
func CalculateForm172PartI(in domain.Form172PartIInput) domain.Form172PartIResult {
	r := domain.Form172PartIResult{TaxYear: in.TaxYear}

	if in.IsEstateOrTrust {
		r.Line1 = money.Sum(in.TaxableIncome, in.CharitableDeduction, in.IncomeDistributionDeduction, in.ExemptionDeduction)
	} else {
		r.Line1 = in.AdjustedGrossIncome.Sub(decimal.Max(in.ItemizedDeductions, in.StandardDeduction))
	}

	// nonbusiness capital losses against nonbusiness capital gains
	r.Line2 = in.NonbusinessCapitalLosses
	r.Line3 = in.NonbusinessCapitalGains
	r.Line4 = money.Excess(r.Line2, r.Line3)
	r.Line5 = money.Excess(r.Line3, r.Line2)

	// nonbusiness deductions against nonbusiness income
	r.Line6 = in.NonbusinessDeductions
	r.Line7 = in.NonbusinessIncome
	r.Line8 = r.Line5.Add(r.Line7)
	r.Line9 = money.Excess(r.Line6, r.Line8)
	r.Line10 = decimal.Min(money.Excess(r.Line8, r.Line6), r.Line5)

	// business capital losses
	r.Line11 = in.BusinessCapitalLosses
	r.Line12 = in.BusinessCapitalGains
	r.Line13 = r.Line10.Add(r.Line12)
	r.Line14 = money.Excess(r.Line11, r.Line13)
	r.Line15 = r.Line4.Add(r.Line14)

	r.Line16 = money.Ceil0(in.ScheduleDCombined).Abs()
	r.Line17 = in.Section1202Exclusion
	r.Line18 = money.Excess(r.Line16, r.Line17)
	r.Line19 = decimal.Min(r.Line16, CapitalLossLimit(in.IsSingle))
	r.Line20 = money.Excess(r.Line18, r.Line19)
	r.Line21 = money.Excess(r.Line15, r.Line20)

	r.Line22 = in.OtherSection1202Exclusion
	r.Line23 = in.NOLDeductionOtherYears
	r.Line24 = money.Sum(r.Line1, r.Line9, r.Line17, r.Line21, r.Line22, r.Line23)
	r.HasNOL = r.Line24.IsNegative()
	return r
}

// CalculateForm172PartII figures modified taxable income for one carryover year and the
// NOL left to carry to the year after.
func CalculateForm172PartII(in domain.Form172PartIIInput) domain.Form172PartIIResult {
	r := domain.Form172PartIIResult{
		TaxYear: in.TaxYear,
		Line1:   in.NOLDeduction,
		Line2:   in.TaxableIncome,
		Line3:   in.NetCapitalLossDeduction,
		Line4:   in.Section1202Exclusion,
		Line5:   in.DomesticProductionDeduction,
		Line6:   in.AGIAdjustment,
		Line8:   in.QBIDeduction,
	}

	if in.UsedItemizedDeductions {
		refigureItemized(in, &r)
		r.Line7 = r.Line33
	}

	r.Line9 = money.Floor0(money.Sum(r.Line2, r.Line3, r.Line4, r.Line5, r.Line6, r.Line7, r.Line8))
	r.Line10 = money.Excess(r.Line1, r.Line9)
	return r
}

func refigureItemized(in domain.Form172PartIIInput, r *domain.Form172PartIIResult) {
	r.Line11 = in.AdjustedGrossIncome
	r.Line12 = in.AGIAdjustments
	r.Line13 = r.Line11.Add(r.Line12)
	floorBase := money.Floor0(r.Line13)

	r.Line14 = in.MedicalDeduction
	r.Line15 = in.MedicalExpenses
	r.Line16 = floorBase.Mul(medicalFloorRate).Round(2)
	r.Line17 = money.Excess(r.Line15, r.Line16)
	r.Line18 = r.Line14.Sub(r.Line17)

	r.Line19 = in.MortgageInsurancePremiums
	r.Line20 = in.RefiguredMortgageInsurance
	r.Line21 = r.Line19.Sub(r.Line20)

	r.Line22 = r.Line13
	r.Line23 = in.CharitableContributions
	r.Line24 = in.RefiguredCharitable
	r.Line25 = r.Line23.Sub(r.Line24)

	r.Line26 = in.CasualtyLossDeduction
	r.Line27 = in.CasualtyLossBeforeFloor
	r.Line28 = floorBase.Mul(casualtyFloorRate).Round(2)
	r.Line29 = money.Excess(r.Line27, r.Line28)
	r.Line30 = r.Line26.Sub(r.Line29)

	r.Line31 = in.OtherItemizedAdjustment
	r.Line32 = in.PhaseoutAdjustment
	r.Line33 = money.Sum(r.Line18, r.Line21, r.Line25, r.Line30, r.Line31, r.Line32)
}
