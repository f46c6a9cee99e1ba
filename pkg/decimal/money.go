package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dollarPrinter groups whole dollars in thousands
var dollarPrinter = message.NewPrinter(language.English)

// Money represents a form line amount with financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string such as "1,250.00" or "$-3000"
func NewMoneyFromString(value string) (Money, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as currency rounded to cents, negatives in parentheses
func (m Money) Format() string {
	abs := m.Decimal.Abs().Round(2)
	_, cents, _ := strings.Cut(abs.StringFixed(2), ".")
	s := "$" + dollarPrinter.Sprintf("%d", abs.IntPart()) + "." + cents
	if m.Decimal.Round(2).IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// Sum adds any number of line amounts
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Floor0 returns max(0, d). Used for "if zero or less, enter -0-" lines.
func Floor0(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Ceil0 returns min(0, d).
func Ceil0(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return decimal.Zero
	}
	return d
}

// Excess returns max(0, a-b), the "if line a is more than line b, enter the difference" rule.
func Excess(a, b decimal.Decimal) decimal.Decimal {
	return Floor0(a.Sub(b))
}

// RoundToNearest rounds d to the nearest multiple of step (half away from zero)
func RoundToNearest(d, step decimal.Decimal) decimal.Decimal {
	if step.IsZero() {
		return d
	}
	return d.Div(step).Round(0).Mul(step)
}
