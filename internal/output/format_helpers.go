package output

import (
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators, negatives in parentheses.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatAmount is the plain two-decimal form used in machine-readable outputs.
func FormatAmount(amount decimal.Decimal) string { return amount.StringFixed(2) }
