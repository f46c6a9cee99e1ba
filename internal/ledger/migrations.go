package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// ExpectedSchemaVersion is the schema version this build reads and writes.
const ExpectedSchemaVersion = 2

// Migration is one step of the ledger schema.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial carryforward ledger",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS carryforwards (
					id TEXT PRIMARY KEY,
					interest_id TEXT NOT NULL,
					tax_year INTEGER NOT NULL,
					at_risk_loss TEXT NOT NULL DEFAULT '0',
					at_risk_carryover TEXT NOT NULL DEFAULT '0',
					passive_loss TEXT NOT NULL DEFAULT '0',
					passive_carryover TEXT NOT NULL DEFAULT '0',
					excess_business_loss TEXT NOT NULL DEFAULT '0',
					nol_deduction TEXT NOT NULL DEFAULT '0',
					nol_carryover TEXT NOT NULL DEFAULT '0',
					notes TEXT NOT NULL DEFAULT '',
					updated_at TEXT NOT NULL,
					UNIQUE (interest_id, tax_year)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_carryforwards_interest ON carryforwards(interest_id)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Track record source and NOL loss year",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE carryforwards ADD COLUMN source TEXT NOT NULL DEFAULT 'manual'`,
				`ALTER TABLE carryforwards ADD COLUMN nol_loss_year INTEGER NOT NULL DEFAULT 0`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// SchemaVersion returns the schema version recorded in the database.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies every pending migration, each in its own transaction.
func (s *Store) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		s.logger.Infof("applied ledger migration %d: %s", migration.Version, migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}
	return nil
}
