package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "ledger", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = time.Now })
}

func TestOpen_RequiresPath(t *testing.T) {
	store, err := Open("")
	assert.Nil(t, store)
	assert.Error(t, err)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, dbPath, store.Path())
	assert.DirExists(t, filepath.Dir(dbPath))
}

func TestMigrate(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// running again is a no-op
	require.NoError(t, store.Migrate(ctx))

	var columns int
	require.NoError(t, store.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('carryforwards') WHERE name IN ('source', 'nol_loss_year')`,
	).Scan(&columns))
	assert.Equal(t, 2, columns)
}

func TestUpsertAndGet(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)
	freezeTime(t, at)

	rec := &domain.LedgerRecord{
		InterestID:         "acme-llc",
		TaxYear:            2024,
		AtRiskLoss:         decimal.NewFromInt(12000),
		PassiveCarryover:   decimal.RequireFromString("1500.25"),
		ExcessBusinessLoss: decimal.NewFromInt(95000),
		NOLLossYear:        2024,
		Notes:              "from K-1",
	}
	require.NoError(t, store.Upsert(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, domain.LedgerSourceManual, rec.Source)

	got, err := store.Get(ctx, "acme-llc", 2024)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.AtRiskLoss.Equal(decimal.NewFromInt(12000)))
	assert.True(t, got.PassiveCarryover.Equal(decimal.RequireFromString("1500.25")))
	assert.True(t, got.ExcessBusinessLoss.Equal(decimal.NewFromInt(95000)))
	assert.True(t, got.NOLCarryover.IsZero())
	assert.Equal(t, 2024, got.NOLLossYear)
	assert.Equal(t, "from K-1", got.Notes)
	assert.True(t, got.UpdatedAt.Equal(at))
}

func TestUpsert_LastWriteWins(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	first := &domain.LedgerRecord{InterestID: "acme-llc", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(100)}
	require.NoError(t, store.Upsert(ctx, first))

	second := &domain.LedgerRecord{
		InterestID:   "acme-llc",
		TaxYear:      2024,
		NOLCarryover: decimal.NewFromInt(250),
		Source:       domain.LedgerSourceComputed,
	}
	require.NoError(t, store.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID, "existing row keeps its id")

	got, err := store.Get(ctx, "acme-llc", 2024)
	require.NoError(t, err)
	assert.True(t, got.NOLCarryover.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.LedgerSourceComputed, got.Source)

	all, err := store.List(ctx, "acme-llc")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsert_Validation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		rec  *domain.LedgerRecord
	}{
		{name: "nil", rec: nil},
		{name: "missing interest", rec: &domain.LedgerRecord{InterestID: "  ", TaxYear: 2024}},
		{name: "missing year", rec: &domain.LedgerRecord{InterestID: "x"}},
		{name: "unknown source", rec: &domain.LedgerRecord{InterestID: "x", TaxYear: 2024, Source: "imported"}},
		{name: "negative carryover", rec: &domain.LedgerRecord{InterestID: "x", TaxYear: 2024, NOLCarryover: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Upsert(ctx, tt.rec)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	store := createTestStore(t)

	rec, err := store.Get(context.Background(), "nobody", 2024)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, r := range []domain.LedgerRecord{
		{InterestID: "b-partners", TaxYear: 2023},
		{InterestID: "a-llc", TaxYear: 2025},
		{InterestID: "a-llc", TaxYear: 2023},
		{InterestID: "a-llc", TaxYear: 2024},
	} {
		rec := r
		require.NoError(t, store.Upsert(ctx, &rec))
	}

	records, err := store.List(ctx, "a-llc")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{2023, 2024, 2025}, []int{records[0].TaxYear, records[1].TaxYear, records[2].TaxYear})

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "b-partners", all[3].InterestID)

	none, err := store.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDelete(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &domain.LedgerRecord{InterestID: "acme-llc", TaxYear: 2024}))
	require.NoError(t, store.Delete(ctx, "acme-llc", 2024))

	_, err := store.Get(ctx, "acme-llc", 2024)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "acme-llc", 2024), ErrNotFound)
}
