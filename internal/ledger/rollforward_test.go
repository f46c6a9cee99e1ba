package ledger

import (
	"context"
	"testing"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeRollforward(t *testing.T) {
	tests := []struct {
		name              string
		prev              domain.LedgerRecord
		ebl               int64
		partII            *domain.Form172PartIIResult
		nextIncome        int64
		expectedDeduction int64
		expectedCarryover int64
		expectedLossYear  int
	}{
		{
			name:              "excess business loss becomes NOL capped at 80%",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2023},
			ebl:               95000,
			nextIncome:        100000,
			expectedDeduction: 80000,
			expectedCarryover: 15000,
			expectedLossYear:  2023,
		},
		{
			name:              "computed part 2 carryover replaces the manual one",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(99999), NOLLossYear: 2019},
			partII:            &domain.Form172PartIIResult{TaxYear: 2024, Line10: decimal.NewFromInt(20000)},
			nextIncome:        10000,
			expectedDeduction: 8000,
			expectedCarryover: 12000,
			expectedLossYear:  2019,
		},
		{
			name:              "pre-2018 loss offsets all income",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2022, NOLCarryover: decimal.NewFromInt(50000), NOLLossYear: 2016},
			nextIncome:        10000,
			expectedDeduction: 10000,
			expectedCarryover: 40000,
			expectedLossYear:  2016,
		},
		{
			name:              "loss year before the 80% limit years",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2019},
			ebl:               30000,
			nextIncome:        20000,
			expectedDeduction: 20000,
			expectedCarryover: 10000,
			expectedLossYear:  2019,
		},
		{
			name:              "pre-2018 carryover and new loss are limited separately",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(10000), NOLLossYear: 2016},
			ebl:               50000,
			nextIncome:        40000,
			expectedDeduction: 34000, // 10000 in full, then 80% of the remaining 30000
			expectedCarryover: 26000,
			expectedLossYear:  2024,
		},
		{
			name:              "post-2017 carryover and new loss share one 80% limit",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(10000), NOLLossYear: 2021},
			ebl:               50000,
			nextIncome:        40000,
			expectedDeduction: 32000,
			expectedCarryover: 28000,
			expectedLossYear:  2024,
		},
		{
			name:              "carryover without a loss year is limited as the year's own loss",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(50000)},
			nextIncome:        10000,
			expectedDeduction: 8000,
			expectedCarryover: 42000,
			expectedLossYear:  2024,
		},
		{
			name:              "nothing to carry",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024},
			nextIncome:        50000,
			expectedDeduction: 0,
			expectedCarryover: 0,
			expectedLossYear:  0,
		},
		{
			name:              "loss next year absorbs nothing",
			prev:              domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(5000), NOLLossYear: 2021},
			nextIncome:        -20000,
			expectedDeduction: 0,
			expectedCarryover: 5000,
			expectedLossYear:  2021,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f461 := domain.Form461Result{Line16: decimal.NewFromInt(tt.ebl)}
			next := ProposeRollforward(tt.prev, f461, tt.partII, decimal.NewFromInt(tt.nextIncome))

			assert.Equal(t, tt.prev.InterestID, next.InterestID)
			assert.Equal(t, tt.prev.TaxYear+1, next.TaxYear)
			assert.Equal(t, domain.LedgerSourceComputed, next.Source)
			assert.Empty(t, next.ID)
			assert.True(t, next.NOLDeduction.Equal(decimal.NewFromInt(tt.expectedDeduction)), "deduction %s", next.NOLDeduction)
			assert.True(t, next.NOLCarryover.Equal(decimal.NewFromInt(tt.expectedCarryover)), "carryover %s", next.NOLCarryover)
			assert.Equal(t, tt.expectedLossYear, next.NOLLossYear)
			assert.Contains(t, next.Notes, "rolled forward from")
		})
	}
}

func TestProposeRollforward_CarriesAtRiskAndPassive(t *testing.T) {
	prev := domain.LedgerRecord{
		InterestID:       "acme",
		TaxYear:          2024,
		AtRiskLoss:       decimal.NewFromInt(7000),
		AtRiskCarryover:  decimal.NewFromInt(3000),
		PassiveCarryover: decimal.NewFromInt(1200),
	}

	next := ProposeRollforward(prev, domain.Form461Result{}, nil, decimal.Zero)

	assert.True(t, next.AtRiskCarryover.Equal(decimal.NewFromInt(3000)))
	assert.True(t, next.PassiveCarryover.Equal(decimal.NewFromInt(1200)))
	assert.True(t, next.AtRiskLoss.IsZero())
}

func TestProposeRollforward_PersistsWhenConfirmed(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	prev := &domain.LedgerRecord{InterestID: "acme", TaxYear: 2024, ExcessBusinessLoss: decimal.NewFromInt(95000)}
	require.NoError(t, store.Upsert(ctx, prev))

	next := ProposeRollforward(*prev, domain.Form461Result{Line16: prev.ExcessBusinessLoss}, nil, decimal.NewFromInt(200000))
	require.NoError(t, store.Upsert(ctx, &next))

	got, err := store.Get(ctx, "acme", 2025)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerSourceComputed, got.Source)
	assert.True(t, got.NOLDeduction.Equal(decimal.NewFromInt(95000)))
	assert.True(t, got.NOLCarryover.IsZero())
	assert.Equal(t, 2024, got.NOLLossYear)
}
