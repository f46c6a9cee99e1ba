package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSource records whether a ledger row was typed by an operator or proposed from
// computed forms and then confirmed.
type LedgerSource string

const (
	LedgerSourceManual   LedgerSource = "manual"
	LedgerSourceComputed LedgerSource = "computed"
)

// LedgerRecord is the per-ownership-interest, per-tax-year loss limitation record.
// There is at most one record per (InterestID, TaxYear).
type LedgerRecord struct {
	ID         string `json:"id"`
	InterestID string `json:"interest_id"`
	TaxYear    int    `json:"tax_year"`

	AtRiskLoss         decimal.Decimal `json:"at_risk_loss"`
	AtRiskCarryover    decimal.Decimal `json:"at_risk_carryover"`
	PassiveLoss        decimal.Decimal `json:"passive_loss"`
	PassiveCarryover   decimal.Decimal `json:"passive_carryover"`
	ExcessBusinessLoss decimal.Decimal `json:"excess_business_loss"`
	NOLDeduction       decimal.Decimal `json:"nol_deduction"`
	NOLCarryover       decimal.Decimal `json:"nol_carryover"`
	// NOLLossYear is the earliest loss year feeding NOLCarryover; it selects the
	// deduction limitation in later years.
	NOLLossYear int `json:"nol_loss_year"`

	Source    LedgerSource `json:"source"`
	Notes     string       `json:"notes"`
	UpdatedAt time.Time    `json:"updated_at"`
}
