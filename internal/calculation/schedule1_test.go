package calculation

import (
	"testing"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSchedule1(t *testing.T) {
	r := CalculateSchedule1(domain.Schedule1Input{
		Schedule1Lines: domain.Schedule1Lines{
			TaxableRefunds:      dec(100),
			BusinessIncome:      dec(30000),
			Unemployment:        dec(5000),
			NOLDeduction:        dec(20000),
			HSADeduction:        dec(3000),
			StudentLoanInterest: dec(2500),
		},
		TaxYear:  2024,
		IsSingle: true,
	})

	assertDecimal(t, dec(-20000), r.Line8a, "line8a")
	assertDecimal(t, dec(-20000), r.Line9, "line9")
	assertDecimal(t, dec(15100), r.Line10, "line10")
	assertDecimal(t, dec(5500), r.Line26, "line26")
	assert.True(t, r.Line8p.IsZero())
}

func TestSchedule1NOLDeductionIsNegated(t *testing.T) {
	r := CalculateSchedule1(domain.Schedule1Input{
		Schedule1Lines: domain.Schedule1Lines{NOLDeduction: dec(7000)},
		TaxYear:        2024,
		IsSingle:       true,
	})
	assertDecimal(t, dec(-7000), r.Line8a, "line8a")
	assertDecimal(t, dec(-7000), r.Line9, "line9")
}

func TestSchedule1ExcessBusinessLossAddBack(t *testing.T) {
	r := CalculateSchedule1(domain.Schedule1Input{
		Schedule1Lines: domain.Schedule1Lines{BusinessIncome: dec(-400000)},
		TaxYear:        2024,
		IsSingle:       true,
	})

	assertDecimal(t, dec(-400000), r.Line3, "line3")
	assertDecimal(t, dec(95000), r.Line8p, "line8p")
	assertDecimal(t, dec(95000), r.Line9, "line9")
	assertDecimal(t, dec(-305000), r.Line10, "line10")
}

func TestSchedule1Line8pMatchesForm461(t *testing.T) {
	tests := []struct {
		name     string
		business int64
		rental   int64
		isSingle bool
		year     int
	}{
		{name: "no loss", business: 10000, isSingle: true, year: 2024},
		{name: "single excess", business: -400000, isSingle: true, year: 2024},
		{name: "joint excess", business: -900000, rental: -20000, year: 2025},
		{name: "projected year", business: -500000, isSingle: true, year: 2028},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := domain.Schedule1Lines{BusinessIncome: dec(tt.business), RentalIncome: dec(tt.rental)}
			r := CalculateSchedule1(domain.Schedule1Input{Schedule1Lines: lines, TaxYear: tt.year, IsSingle: tt.isSingle})

			direct := CalculateForm461(domain.Form461Input{
				BusinessIncome: dec(tt.business),
				RentalIncome:   dec(tt.rental),
				TaxYear:        tt.year,
				IsSingle:       tt.isSingle,
			})

			assertDecimal(t, direct.Line16, r.Line8p, "line8p")
			assertDecimal(t, r.Form461.Line16, r.Line8p, "embedded form 461")
		})
	}
}
