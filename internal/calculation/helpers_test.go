package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, expected decimal.Decimal, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(expected), "%s: expected %s, got %s", field, expected, actual)
}
