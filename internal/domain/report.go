package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BracketRow is one marginal-rate range for a jurisdiction, year and filing status.
// An empty State is the federal table. A zero MaxIncome marks the open-ended top bracket.
type BracketRow struct {
	State        string          `yaml:"state" json:"state"`
	Year         int             `yaml:"year" json:"year"`
	FilingStatus FilingStatus    `yaml:"filing_status" json:"filing_status"`
	MinIncome    decimal.Decimal `yaml:"min_income" json:"min_income"`
	MaxIncome    decimal.Decimal `yaml:"max_income" json:"max_income"`
	Rate         decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the row has no upper limit
func (b BracketRow) Unbounded() bool {
	return b.MaxIncome.IsZero()
}

// BracketTax is the tax attributed to a single bracket
type BracketTax struct {
	Rate        decimal.Decimal `json:"rate"`
	AmountTaxed decimal.Decimal `json:"amount_taxed"`
	Tax         decimal.Decimal `json:"tax"`
}

// MarginalTaxResult is the output of the bracket walk
type MarginalTaxResult struct {
	Year         int             `json:"year"`
	State        string          `json:"state"`
	FilingStatus FilingStatus    `json:"filing_status"`
	Taxes        []BracketTax    `json:"taxes"`
	TotalTax     decimal.Decimal `json:"total_tax"`
}

// EffectiveRate returns TotalTax / income, zero when income is not positive
func (m MarginalTaxResult) EffectiveRate(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return m.TotalTax.Div(income)
}

// ThresholdRow is one year of the excess business loss threshold table
type ThresholdRow struct {
	TaxYear int             `yaml:"tax_year" json:"tax_year"`
	Single  decimal.Decimal `yaml:"single" json:"single"`
	Joint   decimal.Decimal `yaml:"joint" json:"joint"`
}

// ReturnInput is a single return as read from an input file
type ReturnInput struct {
	Name     string        `yaml:"name" json:"name"`
	Form1040 Form1040Input `yaml:"form_1040" json:"form_1040"`
	// EstimateTax runs the marginal evaluator on Form 1040 line 15.
	EstimateTax bool `yaml:"estimate_tax" json:"estimate_tax"`
	// EstimateStateTax additionally evaluates the state table for Form1040.State.
	EstimateStateTax bool `yaml:"estimate_state_tax" json:"estimate_state_tax"`
}

// ReturnReport is the computed return handed to output formatters
type ReturnReport struct {
	Name         string             `json:"name"`
	Form1040     Form1040Result     `json:"form_1040"`
	FederalTax   *MarginalTaxResult `json:"federal_tax,omitempty"`
	StateTax     *MarginalTaxResult `json:"state_tax,omitempty"`
	ComputedAt   time.Time          `json:"computed_at"`
	Observations []string           `json:"observations,omitempty"`
}
