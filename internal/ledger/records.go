package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
)

const recordColumns = `id, interest_id, tax_year, at_risk_loss, at_risk_carryover, passive_loss,
	passive_carryover, excess_business_loss, nol_deduction, nol_carryover, nol_loss_year,
	source, notes, updated_at`

// Upsert writes a record, replacing any existing record for the same interest and year.
// The stored ID and UpdatedAt are written back to rec.
func (s *Store) Upsert(ctx context.Context, rec *domain.LedgerRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Source == "" {
		rec.Source = domain.LedgerSourceManual
	}
	rec.UpdatedAt = nowFunc().UTC()

	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO carryforwards (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(interest_id, tax_year) DO UPDATE SET
			at_risk_loss = excluded.at_risk_loss,
			at_risk_carryover = excluded.at_risk_carryover,
			passive_loss = excluded.passive_loss,
			passive_carryover = excluded.passive_carryover,
			excess_business_loss = excluded.excess_business_loss,
			nol_deduction = excluded.nol_deduction,
			nol_carryover = excluded.nol_carryover,
			nol_loss_year = excluded.nol_loss_year,
			source = excluded.source,
			notes = excluded.notes,
			updated_at = excluded.updated_at
		RETURNING id`,
		rec.ID, rec.InterestID, rec.TaxYear,
		rec.AtRiskLoss.String(), rec.AtRiskCarryover.String(),
		rec.PassiveLoss.String(), rec.PassiveCarryover.String(),
		rec.ExcessBusinessLoss.String(), rec.NOLDeduction.String(), rec.NOLCarryover.String(),
		rec.NOLLossYear, string(rec.Source), rec.Notes, rec.UpdatedAt.Format(time.RFC3339Nano),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save ledger record %s/%d: %w", rec.InterestID, rec.TaxYear, err)
	}
	rec.ID = id

	s.logger.Debugf("saved ledger record %s/%d (%s)", rec.InterestID, rec.TaxYear, rec.Source)
	return nil
}

// Get returns the record for an interest and tax year.
func (s *Store) Get(ctx context.Context, interestID string, year int) (*domain.LedgerRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM carryforwards WHERE interest_id = ? AND tax_year = ?`,
		interestID, year)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%d: %w", interestID, year, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger record: %w", err)
	}
	return rec, nil
}

// List returns the records for an interest ordered by tax year. An empty interestID
// lists every interest.
func (s *Store) List(ctx context.Context, interestID string) ([]domain.LedgerRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM carryforwards`
	var args []any
	if interestID != "" {
		query += ` WHERE interest_id = ?`
		args = append(args, interestID)
	}
	query += ` ORDER BY interest_id, tax_year`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.LedgerRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger records: %w", err)
	}
	return records, nil
}

// Delete removes the record for an interest and tax year.
func (s *Store) Delete(ctx context.Context, interestID string, year int) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM carryforwards WHERE interest_id = ? AND tax_year = ?`, interestID, year)
	if err != nil {
		return fmt.Errorf("failed to delete ledger record: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s/%d: %w", interestID, year, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.LedgerRecord, error) {
	var (
		rec     domain.LedgerRecord
		amounts [7]string
		source  string
		updated string
	)
	if err := row.Scan(&rec.ID, &rec.InterestID, &rec.TaxYear,
		&amounts[0], &amounts[1], &amounts[2], &amounts[3], &amounts[4], &amounts[5], &amounts[6],
		&rec.NOLLossYear, &source, &rec.Notes, &updated); err != nil {
		return nil, err
	}

	targets := []*decimal.Decimal{
		&rec.AtRiskLoss, &rec.AtRiskCarryover, &rec.PassiveLoss, &rec.PassiveCarryover,
		&rec.ExcessBusinessLoss, &rec.NOLDeduction, &rec.NOLCarryover,
	}
	for i, target := range targets {
		d, err := decimal.NewFromString(amounts[i])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", amounts[i], err)
		}
		*target = d
	}

	rec.Source = domain.LedgerSource(source)
	t, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", updated, err)
	}
	rec.UpdatedAt = t
	return &rec, nil
}

func validateRecord(rec *domain.LedgerRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: ledger record is nil", domain.ErrInvalidInput)
	}
	rec.InterestID = strings.TrimSpace(rec.InterestID)
	if rec.InterestID == "" {
		return fmt.Errorf("%w: interest id is required", domain.ErrInvalidInput)
	}
	if !taxyear.Valid(rec.TaxYear) {
		return fmt.Errorf("%w: tax year must be positive, got %d", domain.ErrInvalidInput, rec.TaxYear)
	}
	switch rec.Source {
	case "", domain.LedgerSourceManual, domain.LedgerSourceComputed:
	default:
		return fmt.Errorf("%w: unknown ledger source %q", domain.ErrInvalidInput, rec.Source)
	}
	for name, v := range map[string]decimal.Decimal{
		"excess_business_loss": rec.ExcessBusinessLoss,
		"nol_deduction":        rec.NOLDeduction,
		"nol_carryover":        rec.NOLCarryover,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative: %w", domain.ErrInvalidInput, name, domain.ErrNegativeDisallowedLoss)
		}
	}
	return nil
}
