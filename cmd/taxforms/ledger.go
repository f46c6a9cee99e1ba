package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/internal/ledger"
	"github.com/rpgo/taxforms/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage the loss carryforward ledger",
		Long: `The ledger keeps one record per ownership interest and tax year holding at-risk,
passive, excess business loss and net operating loss amounts carried between years.`,
	}

	cmd.AddCommand(ledgerListCmd())
	cmd.AddCommand(ledgerShowCmd())
	cmd.AddCommand(ledgerSetCmd())
	cmd.AddCommand(ledgerDeleteCmd())
	cmd.AddCommand(ledgerRollforwardCmd())
	return cmd
}

func parseInterestYear(args []string) (string, int, error) {
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: tax year %q is not a number", domain.ErrInvalidInput, args[1])
	}
	return args[0], year, nil
}

func ledgerListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [interest]",
		Short: "List ledger records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger(store)

			interest := ""
			if len(args) == 1 {
				interest = args[0]
			}
			records, err := store.List(cmd.Context(), interest)
			if err != nil {
				return err
			}
			return printLedger(cmd, records)
		},
	}
	cmd.Flags().StringP("format", "f", "console", "output format (console, json, csv)")
	return cmd
}

func ledgerShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <interest> <year>",
		Short: "Show one ledger record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			interest, year, err := parseInterestYear(args)
			if err != nil {
				return err
			}
			store, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger(store)

			rec, err := store.Get(cmd.Context(), interest, year)
			if err != nil {
				return err
			}
			return printLedger(cmd, []domain.LedgerRecord{*rec})
		},
	}
	cmd.Flags().StringP("format", "f", "json", "output format (console, json, csv)")
	return cmd
}

var ledgerAmountFlags = []struct {
	name  string
	usage string
	field func(*domain.LedgerRecord) *decimal.Decimal
}{
	{"at-risk-loss", "loss limited by the at-risk rules", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.AtRiskLoss }},
	{"at-risk-carryover", "at-risk loss carried to the next year", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.AtRiskCarryover }},
	{"passive-loss", "loss limited by the passive activity rules", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.PassiveLoss }},
	{"passive-carryover", "passive loss carried to the next year", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.PassiveCarryover }},
	{"excess-business-loss", "disallowed excess business loss", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.ExcessBusinessLoss }},
	{"nol-deduction", "NOL deducted this year", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.NOLDeduction }},
	{"nol-carryover", "NOL carried to the next year", func(r *domain.LedgerRecord) *decimal.Decimal { return &r.NOLCarryover }},
}

func ledgerSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <interest> <year>",
		Short: "Create or update a ledger record",
		Long: `Set amounts on the record for an interest and year. Amounts not given keep their
stored value; a new record starts at zero. The record is marked manual.`,
		Args: cobra.ExactArgs(2),
		RunE: runLedgerSet,
	}
	for _, f := range ledgerAmountFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().Int("nol-loss-year", 0, "earliest loss year in the NOL carryover")
	cmd.Flags().String("notes", "", "free-form notes")
	return cmd
}

func runLedgerSet(cmd *cobra.Command, args []string) error {
	interest, year, err := parseInterestYear(args)
	if err != nil {
		return err
	}
	store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer closeLedger(store)

	rec, err := store.Get(cmd.Context(), interest, year)
	switch {
	case err == nil:
	case errors.Is(err, ledger.ErrNotFound):
		rec = &domain.LedgerRecord{InterestID: interest, TaxYear: year}
	default:
		return err
	}

	for _, f := range ledgerAmountFlags {
		raw, _ := cmd.Flags().GetString(f.name)
		if raw == "" {
			continue
		}
		v, err := parseAmount(f.name, raw)
		if err != nil {
			return err
		}
		*f.field(rec) = v
	}
	if cmd.Flags().Changed("nol-loss-year") {
		rec.NOLLossYear, _ = cmd.Flags().GetInt("nol-loss-year")
	}
	if cmd.Flags().Changed("notes") {
		rec.Notes, _ = cmd.Flags().GetString("notes")
	}
	rec.Source = domain.LedgerSourceManual

	if err := store.Upsert(cmd.Context(), rec); err != nil {
		return err
	}
	return printLedger(cmd, []domain.LedgerRecord{*rec})
}

func ledgerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <interest> <year>",
		Short: "Delete a ledger record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			interest, year, err := parseInterestYear(args)
			if err != nil {
				return err
			}
			store, err := openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger(store)

			if err := store.Delete(cmd.Context(), interest, year); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", interest, year)
			return nil
		},
	}
}

func ledgerRollforwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollforward <interest> <year>",
		Short: "Propose next year's record from a year's record and return",
		Long: `Build the year+1 record for an interest. The year's excess business loss
(Form 461 line 16 of --return) joins the NOL carryover, and the NOL deduction is
limited against --next-taxable-income. When the return has a Form 172 Part II for
the year, its carryover replaces the stored one.

The proposal is printed. Pass --confirm to save it.`,
		Args: cobra.ExactArgs(2),
		RunE: runLedgerRollforward,
	}
	cmd.Flags().String("return", "", "YAML return for the year")
	cmd.Flags().String("next-taxable-income", "", "taxable income before the NOL deduction in year+1")
	cmd.Flags().Bool("confirm", false, "save the proposed record")
	cmd.Flags().StringP("format", "f", "console", "output format (console, json, csv)")
	cmd.Flags().String("brackets", "", "YAML bracket table merged over the bundled one")
	return cmd
}

func runLedgerRollforward(cmd *cobra.Command, args []string) error {
	interest, year, err := parseInterestYear(args)
	if err != nil {
		return err
	}
	store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer closeLedger(store)

	prev, err := store.Get(cmd.Context(), interest, year)
	if err != nil {
		return err
	}

	var f461 domain.Form461Result
	var partII *domain.Form172PartIIResult
	nextIncome := decimal.Zero

	if path, _ := cmd.Flags().GetString("return"); path != "" {
		input, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return err
		}
		if input.Form1040.TaxYear != year {
			return fmt.Errorf("%w: %s is a %d return, not %d", domain.ErrInvalidInput, path, input.Form1040.TaxYear, year)
		}
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		report, err := engine.ComputeReturn(*input)
		if err != nil {
			return err
		}
		f461 = report.Form1040.Schedule1.Form461
		for i, p := range report.Form1040.Form172.Part2 {
			switch p.TaxYear {
			case year:
				partII = &report.Form1040.Form172.Part2[i]
			case year + 1:
				nextIncome = p.Line2
			}
		}
	}

	if raw, _ := cmd.Flags().GetString("next-taxable-income"); raw != "" {
		nextIncome, err = parseAmount("next-taxable-income", raw)
		if err != nil {
			return err
		}
	}

	next := ledger.ProposeRollforward(*prev, f461, partII, nextIncome)

	confirm, _ := cmd.Flags().GetBool("confirm")
	if confirm {
		if err := store.Upsert(cmd.Context(), &next); err != nil {
			return err
		}
		logger.Infof("saved rollforward %s %d -> %d", interest, year, next.TaxYear)
	}
	if err := printLedger(cmd, []domain.LedgerRecord{next}); err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(cmd.OutOrStdout(), output.SubtleStyle.Render("Proposal only. Re-run with --confirm to save it."))
	}
	return nil
}

func printLedger(cmd *cobra.Command, records []domain.LedgerRecord) error {
	format := "console"
	if cmd.Flags().Lookup("format") != nil {
		format, _ = cmd.Flags().GetString("format")
	}
	data, err := output.FormatLedger(records, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
