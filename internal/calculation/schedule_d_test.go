package calculation

import (
	"testing"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateScheduleD(t *testing.T) {
	tests := []struct {
		name             string
		input            domain.ScheduleDInput
		expectedLine16   decimal.Decimal
		expectedLine21   decimal.Decimal
		expectedBiz      decimal.Decimal
		expectedPersonal decimal.Decimal
		limitApplied     bool
	}{
		{
			name: "net gain passes through",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line1a: dec(5000), Line8a: dec(2000),
			}},
			expectedLine16: dec(7000), expectedLine21: dec(7000),
			expectedBiz: decimal.Zero, expectedPersonal: dec(7000),
		},
		{
			name: "loss within limit",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line1a: dec(-1000),
			}},
			expectedLine16: dec(-1000), expectedLine21: dec(-1000),
			expectedBiz: decimal.Zero, expectedPersonal: dec(-1000),
		},
		{
			name: "loss limited and split proportionally",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line1a: dec(-8000), Line5: dec(-2000),
			}},
			expectedLine16: dec(-10000), expectedLine21: dec(-3000),
			expectedBiz: dec(-600), expectedPersonal: dec(-2400),
			limitApplied: true,
		},
		{
			name: "married filing separately limited to 1500",
			input: domain.ScheduleDInput{IsSingle: false, ScheduleDLines: domain.ScheduleDLines{
				Line8a: dec(-5000),
			}},
			expectedLine16: dec(-5000), expectedLine21: dec(-1500),
			expectedBiz: decimal.Zero, expectedPersonal: dec(-1500),
			limitApplied: true,
		},
		{
			name: "zero combined is not limited",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line1a: dec(1000), Line8a: dec(-1000),
			}},
			expectedLine16: decimal.Zero, expectedLine21: decimal.Zero,
			expectedBiz: decimal.Zero, expectedPersonal: decimal.Zero,
		},
		{
			name: "repeating share rounds to cents",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line12: dec(-10000), Line8a: dec(-20000),
			}},
			expectedLine16: dec(-30000), expectedLine21: dec(-3000),
			expectedBiz: dec(-1000), expectedPersonal: dec(-2000),
			limitApplied: true,
		},
		{
			name: "business gain against personal loss",
			input: domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
				Line12: dec(5000), Line8a: dec(-20000),
			}},
			expectedLine16: dec(-15000), expectedLine21: dec(-3000),
			expectedBiz: dec(1000), expectedPersonal: dec(-4000),
			limitApplied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalculateScheduleD(tt.input)
			assertDecimal(t, tt.expectedLine16, r.Line16, "line16")
			assertDecimal(t, tt.expectedLine21, r.Line21, "line21")
			assertDecimal(t, tt.expectedBiz, r.LimitedBusiness, "limited business")
			assertDecimal(t, tt.expectedPersonal, r.LimitedPersonal, "limited personal")
			assert.Equal(t, tt.limitApplied, r.LimitApplied)
		})
	}
}

func TestScheduleDLineTotals(t *testing.T) {
	r := CalculateScheduleD(domain.ScheduleDInput{IsSingle: true, ScheduleDLines: domain.ScheduleDLines{
		Line1a: dec(1), Line1b: dec(2), Line2: dec(3), Line3: dec(4), Line4: dec(5), Line5: dec(6), Line6: dec(7),
		Line8a: dec(10), Line8b: dec(20), Line9: dec(30), Line10: dec(40), Line11: dec(50), Line12: dec(60), Line13: dec(70), Line14: dec(80),
	}})

	assertDecimal(t, dec(28), r.Line7, "line7")
	assertDecimal(t, dec(360), r.Line15, "line15")
	assertDecimal(t, dec(388), r.Line16, "line16")
	assertDecimal(t, dec(66), r.BusinessTotal, "business total")
	assertDecimal(t, dec(322), r.PersonalTotal, "personal total")
}

// Split always sums to line 21, non-negative combined is never limited, and the
// limited loss never exceeds the cap.
func TestScheduleDProperties(t *testing.T) {
	amounts := []int64{-250000, -12345, -3001, -3000, -1499, -7, 0, 3, 1500, 98765}

	for _, isSingle := range []bool{true, false} {
		floor := CapitalLossLimit(isSingle).Neg()
		for _, personal := range amounts {
			for _, business := range amounts {
				r := CalculateScheduleD(domain.ScheduleDInput{
					IsSingle: isSingle,
					ScheduleDLines: domain.ScheduleDLines{
						Line1a: decimal.NewFromInt(personal).Div(dec(3)).Round(2),
						Line12: decimal.NewFromInt(business),
					},
				})

				sum := r.LimitedBusiness.Add(r.LimitedPersonal)
				assert.True(t, sum.Equal(r.Line21), "split %s != line21 %s (p=%d b=%d)", sum, r.Line21, personal, business)
				if !r.Line16.IsNegative() {
					assert.True(t, r.Line21.Equal(r.Line16), "combined %s was limited to %s", r.Line16, r.Line21)
				} else {
					assert.True(t, r.Line21.GreaterThanOrEqual(floor), "line21 %s below %s", r.Line21, floor)
				}
			}
		}
	}
}

func TestCapitalLossLimit(t *testing.T) {
	assertDecimal(t, dec(3000), CapitalLossLimit(true), "single")
	assertDecimal(t, dec(1500), CapitalLossLimit(false), "not single")
}
