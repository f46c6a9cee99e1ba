package calculation

import (
	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	capitalLossLimitFull     = decimal.NewFromInt(3000)
	capitalLossLimitSeparate = decimal.NewFromInt(1500)
)

// CapitalLossLimit returns the §1211(b) cap on deductible net capital loss as a positive
// amount: 3000, or 1500 when isSingle is false.
func CapitalLossLimit(isSingle bool) decimal.Decimal {
	if isSingle {
		return capitalLossLimitFull
	}
	return capitalLossLimitSeparate
}

// CalculateScheduleD nets short- and long-term transactions, applies the capital loss
// limitation and splits the limited amount between business and personal origin.
//
// When the limitation applies, the limited loss is allocated in proportion to each side's
// share of the unlimited combined loss, so business-character losses cannot carry the
// personal portion past the cap. The personal share is taken as the remainder so the two
// parts always sum to line 21.
func CalculateScheduleD(in domain.ScheduleDInput) domain.ScheduleDResult {
	l := in.ScheduleDLines
	r := domain.ScheduleDResult{Lines: l}

	r.Line7 = money.Sum(l.Line1a, l.Line1b, l.Line2, l.Line3, l.Line4, l.Line5, l.Line6)
	r.Line15 = money.Sum(l.Line8a, l.Line8b, l.Line9, l.Line10, l.Line11, l.Line12, l.Line13, l.Line14)
	r.Line16 = r.Line7.Add(r.Line15)

	r.Line21 = r.Line16
	if r.Line16.IsNegative() {
		r.Line21 = decimal.Max(r.Line16, CapitalLossLimit(in.IsSingle).Neg())
	}

	r.BusinessTotal = l.Line5.Add(l.Line12)
	r.PersonalTotal = r.Line16.Sub(r.BusinessTotal)

	r.LimitApplied = r.Line16.IsNegative() && !r.Line21.Equal(r.Line16)
	if !r.LimitApplied {
		r.LimitedBusiness = r.BusinessTotal
		r.LimitedPersonal = r.PersonalTotal
		return r
	}

	businessShare := r.BusinessTotal.Div(r.Line16)
	r.LimitedBusiness = r.Line21.Mul(businessShare).Round(2)
	r.LimitedPersonal = r.Line21.Sub(r.LimitedBusiness)
	return r
}
