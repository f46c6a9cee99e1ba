package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/internal/ledger"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newEngine builds an engine from settings. A bracket file replaces the bundled rows for
// every (state, year, status) group it defines.
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	engine := calculation.NewEngine()
	engine.SetLogger(logger)

	if cola := viper.GetString("thresholds.cola"); cola != "" {
		rate, err := decimal.NewFromString(cola)
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("thresholds.cola must be a positive number, got %q", cola)
		}
		engine.CostOfLivingAdjustment = rate
	}
	if n := viper.GetInt("batch.concurrency"); n > 0 {
		engine.Concurrency = n
	}

	file := viper.GetString("brackets.file")
	if cmd.Flags().Lookup("brackets") != nil {
		if f, _ := cmd.Flags().GetString("brackets"); f != "" {
			file = f
		}
	}
	if file != "" {
		table, err := config.NewInputParser().LoadBracketTable(file)
		if err != nil {
			return nil, err
		}
		engine.Brackets = engine.Brackets.Merge(table)
		logger.Infof("loaded %d bracket rows from %s", table.Len(), file)
	}
	return engine, nil
}

// openLedger opens and migrates the ledger database.
func openLedger(ctx context.Context) (*ledger.Store, error) {
	dbPath := viper.GetString("db_path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "taxforms", "ledger.db")
	}
	dbPath = os.ExpandEnv(dbPath)

	store, err := ledger.Open(dbPath)
	if err != nil {
		return nil, err
	}
	store.SetLogger(logger)
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Debugf("opened ledger %s", store.Path())
	return store, nil
}

// parseAmount reads a dollar amount flag, accepting "$" and thousands separators.
func parseAmount(name, raw string) (decimal.Decimal, error) {
	m, err := money.NewMoneyFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: --%s %q is not a number", domain.ErrInvalidInput, name, raw)
	}
	return m.Decimal, nil
}

func closeLedger(store *ledger.Store) {
	if err := store.Close(); err != nil {
		logger.Errorf("failed to close ledger: %v", err)
	}
}

func outputFormat(cmd *cobra.Command) string {
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		return f
	}
	return viper.GetString("output.format")
}
