package domain

import (
	"github.com/shopspring/decimal"
)

// ScheduleDLines holds the short-term (Part I) and long-term (Part II) transaction lines.
// Losses are negative. Lines 5 and 12 carry K-1 pass-through amounts and are treated as
// business-origin capital gains.
type ScheduleDLines struct {
	Line1a decimal.Decimal `yaml:"line_1a" json:"line_1a"`
	Line1b decimal.Decimal `yaml:"line_1b" json:"line_1b"`
	Line2  decimal.Decimal `yaml:"line_2" json:"line_2"`
	Line3  decimal.Decimal `yaml:"line_3" json:"line_3"`
	Line4  decimal.Decimal `yaml:"line_4" json:"line_4"`
	Line5  decimal.Decimal `yaml:"line_5" json:"line_5"` // business: K-1 net short-term
	Line6  decimal.Decimal `yaml:"line_6" json:"line_6"` // short-term carryover (negative)

	Line8a decimal.Decimal `yaml:"line_8a" json:"line_8a"`
	Line8b decimal.Decimal `yaml:"line_8b" json:"line_8b"`
	Line9  decimal.Decimal `yaml:"line_9" json:"line_9"`
	Line10 decimal.Decimal `yaml:"line_10" json:"line_10"`
	Line11 decimal.Decimal `yaml:"line_11" json:"line_11"`
	Line12 decimal.Decimal `yaml:"line_12" json:"line_12"` // business: K-1 net long-term
	Line13 decimal.Decimal `yaml:"line_13" json:"line_13"`
	Line14 decimal.Decimal `yaml:"line_14" json:"line_14"` // long-term carryover (negative)
}

// ScheduleDInput is the full input to the Schedule D calculator
type ScheduleDInput struct {
	ScheduleDLines `yaml:",inline" json:",inline"`
	// IsSingle selects the -3000 loss limit; false selects -1500.
	IsSingle bool `yaml:"is_single" json:"is_single"`
}

// ScheduleDResult is the netted Schedule D
type ScheduleDResult struct {
	Lines ScheduleDLines `json:"lines"`

	Line7  decimal.Decimal `json:"line_7"`  // net short-term
	Line15 decimal.Decimal `json:"line_15"` // net long-term
	Line16 decimal.Decimal `json:"line_16"` // combined
	Line21 decimal.Decimal `json:"line_21"` // combined after loss limitation

	BusinessTotal   decimal.Decimal `json:"business_total"`
	PersonalTotal   decimal.Decimal `json:"personal_total"`
	LimitedBusiness decimal.Decimal `json:"limited_business"`
	LimitedPersonal decimal.Decimal `json:"limited_personal"`
	LimitApplied    bool            `json:"limit_applied"`
}

// Form461Input carries the trade-or-business income lines for Form 461
type Form461Input struct {
	OtherGains           decimal.Decimal `yaml:"other_gains" json:"other_gains"`                       // line 2
	BusinessIncome       decimal.Decimal `yaml:"business_income" json:"business_income"`               // line 3
	RentalIncome         decimal.Decimal `yaml:"rental_income" json:"rental_income"`                   // line 4
	FarmIncome           decimal.Decimal `yaml:"farm_income" json:"farm_income"`                       // line 5
	OtherTradeOrBusiness decimal.Decimal `yaml:"other_trade_or_business" json:"other_trade_or_business"` // line 7

	// ScheduleD, when present, supplies lines 6 and 10.
	ScheduleD *ScheduleDResult `yaml:"-" json:"-"`
	// Legacy capital gain figures used when ScheduleD is nil.
	CapitalGain            decimal.Decimal `yaml:"capital_gain" json:"capital_gain"`
	NonBusinessCapitalGain decimal.Decimal `yaml:"non_business_capital_gain" json:"non_business_capital_gain"`

	NonBusinessDeduction decimal.Decimal `yaml:"non_business_deduction" json:"non_business_deduction"` // line 11

	TaxYear                int             `yaml:"tax_year" json:"tax_year"`
	IsSingle               bool            `yaml:"is_single" json:"is_single"`
	ThresholdOverride      decimal.Decimal `yaml:"threshold_override" json:"threshold_override"`
	CostOfLivingAdjustment decimal.Decimal `yaml:"cost_of_living_adjustment" json:"cost_of_living_adjustment"`
}

// Form461Result holds Form 461 lines 2 through 16. Line16 is the excess business loss
// and is always a non-negative magnitude.
type Form461Result struct {
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
}

// Schedule1Lines are the Schedule 1 amounts supplied by the caller
type Schedule1Lines struct {
	TaxableRefunds       decimal.Decimal `yaml:"taxable_refunds" json:"taxable_refunds"`               // 1
	AlimonyReceived      decimal.Decimal `yaml:"alimony_received" json:"alimony_received"`             // 2a
	BusinessIncome       decimal.Decimal `yaml:"business_income" json:"business_income"`               // 3
	OtherGains           decimal.Decimal `yaml:"other_gains" json:"other_gains"`                       // 4
	RentalIncome         decimal.Decimal `yaml:"rental_income" json:"rental_income"`                   // 5
	FarmIncome           decimal.Decimal `yaml:"farm_income" json:"farm_income"`                       // 6
	Unemployment         decimal.Decimal `yaml:"unemployment" json:"unemployment"`                     // 7
	NOLDeduction         decimal.Decimal `yaml:"nol_deduction" json:"nol_deduction"`                   // 8a, entered positive
	GamblingIncome       decimal.Decimal `yaml:"gambling_income" json:"gambling_income"`               // 8b
	CancellationOfDebt   decimal.Decimal `yaml:"cancellation_of_debt" json:"cancellation_of_debt"`     // 8c
	OtherIncome          decimal.Decimal `yaml:"other_income" json:"other_income"`                     // 8z
	OtherTradeOrBusiness decimal.Decimal `yaml:"other_trade_or_business" json:"other_trade_or_business"` // Form 461 line 7
	NonBusinessDeduction decimal.Decimal `yaml:"non_business_deduction" json:"non_business_deduction"` // Form 461 line 11

	EducatorExpenses            decimal.Decimal `yaml:"educator_expenses" json:"educator_expenses"`                           // 11
	HSADeduction                decimal.Decimal `yaml:"hsa_deduction" json:"hsa_deduction"`                                   // 13
	SelfEmploymentTaxDeduction  decimal.Decimal `yaml:"self_employment_tax_deduction" json:"self_employment_tax_deduction"`   // 15
	SEPSimpleContributions      decimal.Decimal `yaml:"sep_simple_contributions" json:"sep_simple_contributions"`             // 16
	SelfEmployedHealthInsurance decimal.Decimal `yaml:"self_employed_health_insurance" json:"self_employed_health_insurance"` // 17
	EarlyWithdrawalPenalty      decimal.Decimal `yaml:"early_withdrawal_penalty" json:"early_withdrawal_penalty"`             // 18
	IRADeduction                decimal.Decimal `yaml:"ira_deduction" json:"ira_deduction"`                                   // 20
	StudentLoanInterest         decimal.Decimal `yaml:"student_loan_interest" json:"student_loan_interest"`                   // 21
}

// Schedule1Input adds the filing parameters Form 461 needs
type Schedule1Input struct {
	Schedule1Lines `yaml:",inline" json:",inline"`

	ScheduleD              *ScheduleDResult `yaml:"-" json:"-"`
	CapitalGain            decimal.Decimal  `yaml:"capital_gain" json:"capital_gain"`
	NonBusinessCapitalGain decimal.Decimal  `yaml:"non_business_capital_gain" json:"non_business_capital_gain"`

	TaxYear                int             `yaml:"tax_year" json:"tax_year"`
	IsSingle               bool            `yaml:"is_single" json:"is_single"`
	ThresholdOverride      decimal.Decimal `yaml:"threshold_override" json:"threshold_override"`
	CostOfLivingAdjustment decimal.Decimal `yaml:"cost_of_living_adjustment" json:"cost_of_living_adjustment"`
}

// Schedule1Result holds additional income (Part I) and adjustments (Part II)
type Schedule1Result struct {
	Line1  decimal.Decimal `json:"line_1"`
	Line2a decimal.Decimal `json:"line_2a"`
	Line3  decimal.Decimal `json:"line_3"`
	Line4  decimal.Decimal `json:"line_4"`
	Line5  decimal.Decimal `json:"line_5"`
	Line6  decimal.Decimal `json:"line_6"`
	Line7  decimal.Decimal `json:"line_7"`
	Line8a decimal.Decimal `json:"line_8a"`
	Line8b decimal.Decimal `json:"line_8b"`
	Line8c decimal.Decimal `json:"line_8c"`
	Line8p decimal.Decimal `json:"line_8p"`
	Line8z decimal.Decimal `json:"line_8z"`
	Line9  decimal.Decimal `json:"line_9"`
	Line10 decimal.Decimal `json:"line_10"`

	Line11 decimal.Decimal `json:"line_11"`
	Line13 decimal.Decimal `json:"line_13"`
	Line15 decimal.Decimal `json:"line_15"`
	Line16 decimal.Decimal `json:"line_16"`
	Line17 decimal.Decimal `json:"line_17"`
	Line18 decimal.Decimal `json:"line_18"`
	Line20 decimal.Decimal `json:"line_20"`
	Line21 decimal.Decimal `json:"line_21"`
	Line26 decimal.Decimal `json:"line_26"`

	Form461 Form461Result `json:"form_461"`
}

// Form1040Input is everything needed to build the income and AGI sections of Form 1040
type Form1040Input struct {
	TaxYear      int          `yaml:"tax_year" json:"tax_year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	State        string       `yaml:"state" json:"state"`

	Wages                 decimal.Decimal `yaml:"wages" json:"wages"`                                   // 1a
	OtherEarnedIncome     decimal.Decimal `yaml:"other_earned_income" json:"other_earned_income"`       // 1b-1h
	TaxExemptInterest     decimal.Decimal `yaml:"tax_exempt_interest" json:"tax_exempt_interest"`       // 2a
	TaxableInterest       decimal.Decimal `yaml:"taxable_interest" json:"taxable_interest"`             // 2b
	QualifiedDividends    decimal.Decimal `yaml:"qualified_dividends" json:"qualified_dividends"`       // 3a
	OrdinaryDividends     decimal.Decimal `yaml:"ordinary_dividends" json:"ordinary_dividends"`         // 3b
	IRADistributions      decimal.Decimal `yaml:"ira_distributions" json:"ira_distributions"`           // 4a
	TaxableIRA            decimal.Decimal `yaml:"taxable_ira" json:"taxable_ira"`                       // 4b
	Pensions              decimal.Decimal `yaml:"pensions" json:"pensions"`                             // 5a
	TaxablePensions       decimal.Decimal `yaml:"taxable_pensions" json:"taxable_pensions"`             // 5b
	SocialSecurity        decimal.Decimal `yaml:"social_security" json:"social_security"`               // 6a
	TaxableSocialSecurity decimal.Decimal `yaml:"taxable_social_security" json:"taxable_social_security"` // 6b

	ScheduleD ScheduleDLines `yaml:"schedule_d" json:"schedule_d"`
	Schedule1 Schedule1Lines `yaml:"schedule_1" json:"schedule_1"`

	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"` // 12
	QBIDeduction      decimal.Decimal `yaml:"qbi_deduction" json:"qbi_deduction"`           // 13

	Tax                       decimal.Decimal `yaml:"tax" json:"tax"`                                                 // 16
	Schedule2Line3            decimal.Decimal `yaml:"schedule_2_line_3" json:"schedule_2_line_3"`                     // 17
	ChildTaxCredit            decimal.Decimal `yaml:"child_tax_credit" json:"child_tax_credit"`                       // 19
	Schedule3Line8            decimal.Decimal `yaml:"schedule_3_line_8" json:"schedule_3_line_8"`                     // 20
	OtherTaxes                decimal.Decimal `yaml:"other_taxes" json:"other_taxes"`                                 // 23
	W2Withholding             decimal.Decimal `yaml:"w2_withholding" json:"w2_withholding"`                           // 25a
	Form1099Withholding       decimal.Decimal `yaml:"form_1099_withholding" json:"form_1099_withholding"`             // 25b
	OtherWithholding          decimal.Decimal `yaml:"other_withholding" json:"other_withholding"`                     // 25c
	EstimatedPayments         decimal.Decimal `yaml:"estimated_payments" json:"estimated_payments"`                   // 26
	EarnedIncomeCredit        decimal.Decimal `yaml:"earned_income_credit" json:"earned_income_credit"`               // 27
	AdditionalChildTaxCredit  decimal.Decimal `yaml:"additional_child_tax_credit" json:"additional_child_tax_credit"` // 28
	AmericanOpportunityCredit decimal.Decimal `yaml:"american_opportunity_credit" json:"american_opportunity_credit"` // 29
	Schedule3Line15           decimal.Decimal `yaml:"schedule_3_line_15" json:"schedule_3_line_15"`                   // 31
	AppliedToNextYear         decimal.Decimal `yaml:"applied_to_next_year" json:"applied_to_next_year"`               // 36
	EstimatedTaxPenalty       decimal.Decimal `yaml:"estimated_tax_penalty" json:"estimated_tax_penalty"`             // 38

	ThresholdOverride      decimal.Decimal `yaml:"threshold_override" json:"threshold_override"`
	CostOfLivingAdjustment decimal.Decimal `yaml:"cost_of_living_adjustment" json:"cost_of_living_adjustment"`

	// NOL is computed alongside the return and embedded in the result. It is not
	// fed into Schedule 1 line 8a.
	NOL Form172Input `yaml:"form_172" json:"form_172"`
}

// Form1040Result holds the computed Form 1040 lines and the schedules behind them
type Form1040Result struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`

	Line1a decimal.Decimal `json:"line_1a"`
	Line1z decimal.Decimal `json:"line_1z"`
	Line2a decimal.Decimal `json:"line_2a"`
	Line2b decimal.Decimal `json:"line_2b"`
	Line3a decimal.Decimal `json:"line_3a"`
	Line3b decimal.Decimal `json:"line_3b"`
	Line4a decimal.Decimal `json:"line_4a"`
	Line4b decimal.Decimal `json:"line_4b"`
	Line5a decimal.Decimal `json:"line_5a"`
	Line5b decimal.Decimal `json:"line_5b"`
	Line6a decimal.Decimal `json:"line_6a"`
	Line6b decimal.Decimal `json:"line_6b"`
	Line7  decimal.Decimal `json:"line_7"`
	Line8  decimal.Decimal `json:"line_8"`
	Line9  decimal.Decimal `json:"line_9"`  // total income
	Line10 decimal.Decimal `json:"line_10"` // adjustments
	Line11 decimal.Decimal `json:"line_11"` // AGI
	Line12 decimal.Decimal `json:"line_12"`
	Line13 decimal.Decimal `json:"line_13"`
	Line14 decimal.Decimal `json:"line_14"`
	Line15 decimal.Decimal `json:"line_15"` // taxable income

	Line16  decimal.Decimal `json:"line_16"`
	Line17  decimal.Decimal `json:"line_17"`
	Line18  decimal.Decimal `json:"line_18"`
	Line19  decimal.Decimal `json:"line_19"`
	Line20  decimal.Decimal `json:"line_20"`
	Line21  decimal.Decimal `json:"line_21"`
	Line22  decimal.Decimal `json:"line_22"`
	Line23  decimal.Decimal `json:"line_23"`
	Line24  decimal.Decimal `json:"line_24"`
	Line25a decimal.Decimal `json:"line_25a"`
	Line25b decimal.Decimal `json:"line_25b"`
	Line25c decimal.Decimal `json:"line_25c"`
	Line25d decimal.Decimal `json:"line_25d"`
	Line26  decimal.Decimal `json:"line_26"`
	Line27  decimal.Decimal `json:"line_27"`
	Line28  decimal.Decimal `json:"line_28"`
	Line29  decimal.Decimal `json:"line_29"`
	Line31  decimal.Decimal `json:"line_31"`
	Line32  decimal.Decimal `json:"line_32"`
	Line33  decimal.Decimal `json:"line_33"`
	Line34  decimal.Decimal `json:"line_34"`
	Line35a decimal.Decimal `json:"line_35a"`
	Line36  decimal.Decimal `json:"line_36"`
	Line37  decimal.Decimal `json:"line_37"`
	Line38  decimal.Decimal `json:"line_38"`

	Schedule1 Schedule1Result `json:"schedule_1"`
	ScheduleD ScheduleDResult `json:"schedule_d"`
	Form172   Form172Result   `json:"form_172"`
}
