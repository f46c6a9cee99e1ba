package domain

import (
	"github.com/shopspring/decimal"
)

// Form172Input groups the current-year (Part I) and carryover-year (Part II) inputs
type Form172Input struct {
	PartI  *Form172PartIInput   `yaml:"part_1,omitempty" json:"part_1,omitempty"`
	PartII []Form172PartIIInput `yaml:"part_2,omitempty" json:"part_2,omitempty"`
}

// Form172PartIInput figures the current-year net operating loss.
// Capital losses are entered as positive amounts.
type Form172PartIInput struct {
	TaxYear         int  `yaml:"tax_year" json:"tax_year"`
	IsEstateOrTrust bool `yaml:"is_estate_or_trust" json:"is_estate_or_trust"`
	// IsSingle selects the line 19 capital loss cap. Form 1040 sets it from the filing status.
	IsSingle bool `yaml:"is_single" json:"is_single"`

	// Individuals
	AdjustedGrossIncome decimal.Decimal `yaml:"adjusted_gross_income" json:"adjusted_gross_income"`
	ItemizedDeductions  decimal.Decimal `yaml:"itemized_deductions" json:"itemized_deductions"`
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`

	// Estates and trusts
	TaxableIncome               decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	CharitableDeduction         decimal.Decimal `yaml:"charitable_deduction" json:"charitable_deduction"`
	IncomeDistributionDeduction decimal.Decimal `yaml:"income_distribution_deduction" json:"income_distribution_deduction"`
	ExemptionDeduction          decimal.Decimal `yaml:"exemption_deduction" json:"exemption_deduction"`

	NonbusinessCapitalLosses decimal.Decimal `yaml:"nonbusiness_capital_losses" json:"nonbusiness_capital_losses"` // 2
	NonbusinessCapitalGains  decimal.Decimal `yaml:"nonbusiness_capital_gains" json:"nonbusiness_capital_gains"`   // 3
	NonbusinessDeductions    decimal.Decimal `yaml:"nonbusiness_deductions" json:"nonbusiness_deductions"`         // 6
	NonbusinessIncome        decimal.Decimal `yaml:"nonbusiness_income" json:"nonbusiness_income"`                 // 7
	BusinessCapitalLosses    decimal.Decimal `yaml:"business_capital_losses" json:"business_capital_losses"`       // 11
	BusinessCapitalGains     decimal.Decimal `yaml:"business_capital_gains" json:"business_capital_gains"`         // 12

	// ScheduleDCombined is Schedule D line 16, signed. Only a loss feeds lines 16-21.
	ScheduleDCombined         decimal.Decimal `yaml:"schedule_d_combined" json:"schedule_d_combined"`
	Section1202Exclusion      decimal.Decimal `yaml:"section_1202_exclusion" json:"section_1202_exclusion"`             // 17
	OtherSection1202Exclusion decimal.Decimal `yaml:"other_section_1202_exclusion" json:"other_section_1202_exclusion"` // 22
	NOLDeductionOtherYears    decimal.Decimal `yaml:"nol_deduction_other_years" json:"nol_deduction_other_years"`       // 23
}

// Form172PartIResult holds Part I lines 1-24
type Form172PartIResult struct {
	TaxYear int `json:"tax_year"`

	Line1  decimal.Decimal `json:"line_1"`
	Line2  decimal.Decimal `json:"line_2"`
	Line3  decimal.Decimal `json:"line_3"`
	Line4  decimal.Decimal `json:"line_4"`
	Line5  decimal.Decimal `json:"line_5"`
	Line6  decimal.Decimal `json:"line_6"`
	Line7  decimal.Decimal `json:"line_7"`
	Line8  decimal.Decimal `json:"line_8"`
	Line9  decimal.Decimal `json:"line_9"`
	Line10 decimal.Decimal `json:"line_10"`
	Line11 decimal.Decimal `json:"line_11"`
	Line12 decimal.Decimal `json:"line_12"`
	Line13 decimal.Decimal `json:"line_13"`
	Line14 decimal.Decimal `json:"line_14"`
	Line15 decimal.Decimal `json:"line_15"`
	Line16 decimal.Decimal `json:"line_16"`
	Line17 decimal.Decimal `json:"line_17"`
	Line18 decimal.Decimal `json:"line_18"`
	Line19 decimal.Decimal `json:"line_19"`
	Line20 decimal.Decimal `json:"line_20"`
	Line21 decimal.Decimal `json:"line_21"`
	Line22 decimal.Decimal `json:"line_22"`
	Line23 decimal.Decimal `json:"line_23"`
	Line24 decimal.Decimal `json:"line_24"` // negative when an NOL exists

	HasNOL bool `json:"has_nol"`
}

// NOL returns the net operating loss as a positive magnitude, zero when there is none
func (r Form172PartIResult) NOL() decimal.Decimal {
	if !r.HasNOL {
		return decimal.Zero
	}
	return r.Line24.Abs()
}

// Form172PartIIInput figures modified taxable income and the carryover for one year
type Form172PartIIInput struct {
	TaxYear int `yaml:"tax_year" json:"tax_year"`

	NOLDeduction                decimal.Decimal `yaml:"nol_deduction" json:"nol_deduction"`                                 // 1
	TaxableIncome               decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`                               // 2
	NetCapitalLossDeduction     decimal.Decimal `yaml:"net_capital_loss_deduction" json:"net_capital_loss_deduction"`       // 3
	Section1202Exclusion        decimal.Decimal `yaml:"section_1202_exclusion" json:"section_1202_exclusion"`               // 4
	DomesticProductionDeduction decimal.Decimal `yaml:"domestic_production_deduction" json:"domestic_production_deduction"` // 5
	AGIAdjustment               decimal.Decimal `yaml:"agi_adjustment" json:"agi_adjustment"`                               // 6
	QBIDeduction                decimal.Decimal `yaml:"qbi_deduction" json:"qbi_deduction"`                                 // 8

	UsedItemizedDeductions     bool            `yaml:"used_itemized_deductions" json:"used_itemized_deductions"`
	AdjustedGrossIncome        decimal.Decimal `yaml:"adjusted_gross_income" json:"adjusted_gross_income"`               // 11
	AGIAdjustments             decimal.Decimal `yaml:"agi_adjustments" json:"agi_adjustments"`                           // 12
	MedicalDeduction           decimal.Decimal `yaml:"medical_deduction" json:"medical_deduction"`                       // 14
	MedicalExpenses            decimal.Decimal `yaml:"medical_expenses" json:"medical_expenses"`                         // 15
	MortgageInsurancePremiums  decimal.Decimal `yaml:"mortgage_insurance_premiums" json:"mortgage_insurance_premiums"`   // 19
	RefiguredMortgageInsurance decimal.Decimal `yaml:"refigured_mortgage_insurance" json:"refigured_mortgage_insurance"` // 20
	CharitableContributions    decimal.Decimal `yaml:"charitable_contributions" json:"charitable_contributions"`         // 23
	RefiguredCharitable        decimal.Decimal `yaml:"refigured_charitable" json:"refigured_charitable"`                 // 24
	CasualtyLossDeduction      decimal.Decimal `yaml:"casualty_loss_deduction" json:"casualty_loss_deduction"`           // 26
	CasualtyLossBeforeFloor    decimal.Decimal `yaml:"casualty_loss_before_floor" json:"casualty_loss_before_floor"`     // 27
	OtherItemizedAdjustment    decimal.Decimal `yaml:"other_itemized_adjustment" json:"other_itemized_adjustment"`       // 31
	PhaseoutAdjustment         decimal.Decimal `yaml:"phaseout_adjustment" json:"phaseout_adjustment"`                   // 32
}

// Form172PartIIResult holds Part II lines 1-10 and the itemized re-figuring lines 11-33
type Form172PartIIResult struct {
	TaxYear int `json:"tax_year"`

	Line1  decimal.Decimal `json:"line_1"`
	Line2  decimal.Decimal `json:"line_2"`
	Line3  decimal.Decimal `json:"line_3"`
	Line4  decimal.Decimal `json:"line_4"`
	Line5  decimal.Decimal `json:"line_5"`
	Line6  decimal.Decimal `json:"line_6"`
	Line7  decimal.Decimal `json:"line_7"`
	Line8  decimal.Decimal `json:"line_8"`
	Line9  decimal.Decimal `json:"line_9"`  // modified taxable income
	Line10 decimal.Decimal `json:"line_10"` // carryover to the next year

	Line11 decimal.Decimal `json:"line_11"`
	Line12 decimal.Decimal `json:"line_12"`
	Line13 decimal.Decimal `json:"line_13"`
	Line14 decimal.Decimal `json:"line_14"`
	Line15 decimal.Decimal `json:"line_15"`
	Line16 decimal.Decimal `json:"line_16"`
	Line17 decimal.Decimal `json:"line_17"`
	Line18 decimal.Decimal `json:"line_18"`
	Line19 decimal.Decimal `json:"line_19"`
	Line20 decimal.Decimal `json:"line_20"`
	Line21 decimal.Decimal `json:"line_21"`
	Line22 decimal.Decimal `json:"line_22"`
	Line23 decimal.Decimal `json:"line_23"`
	Line24 decimal.Decimal `json:"line_24"`
	Line25 decimal.Decimal `json:"line_25"`
	Line26 decimal.Decimal `json:"line_26"`
	Line27 decimal.Decimal `json:"line_27"`
	Line28 decimal.Decimal `json:"line_28"`
	Line29 decimal.Decimal `json:"line_29"`
	Line30 decimal.Decimal `json:"line_30"`
	Line31 decimal.Decimal `json:"line_31"`
	Line32 decimal.Decimal `json:"line_32"`
	Line33 decimal.Decimal `json:"line_33"`
}

// Form172Result holds Part I (absent when no Part I input was given) and one Part II
// entry per requested carryover year.
type Form172Result struct {
	Part1 *Form172PartIResult  `json:"part_1,omitempty"`
	Part2 []Form172PartIIResult `json:"part_2,omitempty"`
}
