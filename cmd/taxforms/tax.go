package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/internal/output"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compute marginal tax on a taxable income",
		Long: `Walk the bracket table for a jurisdiction, year and filing status and print the
tax attributed to each bracket. Leave --state empty for the federal table.`,
		Args: cobra.NoArgs,
		RunE: runTax,
	}

	cmd.Flags().Int("year", 0, "tax year (default: the current filing year)")
	cmd.Flags().String("state", "", "two-letter state code; empty for federal")
	cmd.Flags().String("status", "single", "filing status (single, mfj, mfs, hoh, qss)")
	cmd.Flags().String("income", "", "taxable income")
	cmd.Flags().String("brackets", "", "YAML bracket table merged over the bundled one")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func runTax(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	year, status, err := yearAndStatus(cmd)
	if err != nil {
		return err
	}
	raw, _ := cmd.Flags().GetString("income")
	income, err := parseAmount("income", raw)
	if err != nil {
		return err
	}
	state, _ := cmd.Flags().GetString("state")

	result := engine.Brackets.MarginalTax(year, state, income, status)
	printMarginalTax(cmd, result, income, engine.Brackets.Years(state))
	return nil
}

func printMarginalTax(cmd *cobra.Command, result domain.MarginalTaxResult, income decimal.Decimal, years []int) {
	out := cmd.OutOrStdout()
	jurisdiction := "Federal"
	if result.State != "" {
		jurisdiction = result.State
	}
	fmt.Fprintln(out, output.TitleStyle.Render(fmt.Sprintf("%s %d tax on %s (%s)",
		jurisdiction, result.Year, output.FormatCurrency(income), result.FilingStatus)))

	if len(result.Taxes) == 0 {
		msg := "No brackets for this jurisdiction, year and status."
		if len(years) > 0 {
			msg += fmt.Sprintf(" Years with brackets: %s.", joinYears(years))
		}
		fmt.Fprintln(out, output.SubtleStyle.Render(msg))
		return
	}
	for _, b := range result.Taxes {
		fmt.Fprintf(out, "  %8s of %14s  %14s\n", output.FormatPercentage(b.Rate.Mul(decimal.NewFromInt(100))),
			output.FormatCurrency(b.AmountTaxed), output.FormatCurrency(b.Tax))
	}
	fmt.Fprintf(out, "  %-27s  %14s\n", "Total", output.FormatCurrency(result.TotalTax))
	fmt.Fprintf(out, "  %-27s  %14s\n", "Effective rate",
		output.FormatPercentage(result.EffectiveRate(income).Mul(decimal.NewFromInt(100))))
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}

func yearAndStatus(cmd *cobra.Command) (int, domain.FilingStatus, error) {
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = taxyear.Current(time.Now())
	}
	if !taxyear.Valid(year) {
		return 0, "", fmt.Errorf("%w: tax year must be positive, got %d", domain.ErrInvalidInput, year)
	}
	raw, _ := cmd.Flags().GetString("status")
	status, err := domain.ParseFilingStatus(raw)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return year, status, nil
}

func thresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Print the excess business loss threshold",
		Long: `Print the Form 461 line 15 threshold for a year and filing status. Years past the
table are projected with the cost of living adjustment.`,
		Args: cobra.NoArgs,
		RunE: runThreshold,
	}

	cmd.Flags().Int("year", 0, "tax year (default: the current filing year)")
	cmd.Flags().String("status", "single", "filing status (single, mfj, mfs, hoh, qss)")
	cmd.Flags().String("cola", "", "yearly growth factor for projected years (default 1.03)")
	cmd.Flags().Bool("table", false, "print the whole threshold table")
	return cmd
}

func runThreshold(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if all, _ := cmd.Flags().GetBool("table"); all {
		fmt.Fprintf(out, "%-6s %14s %14s\n", "Year", "Single", "Joint")
		for _, r := range calculation.ThresholdTable() {
			fmt.Fprintf(out, "%-6d %14s %14s\n", r.TaxYear, output.FormatCurrency(r.Single), output.FormatCurrency(r.Joint))
		}
		return nil
	}

	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}
	year, status, err := yearAndStatus(cmd)
	if err != nil {
		return err
	}

	cola := engine.CostOfLivingAdjustment
	if raw, _ := cmd.Flags().GetString("cola"); raw != "" {
		cola, err = decimal.NewFromString(raw)
		if err != nil || !cola.IsPositive() {
			return fmt.Errorf("%w: cola must be a positive number, got %q", domain.ErrInvalidInput, raw)
		}
	}

	amount := calculation.ExcessBusinessLossThreshold(calculation.ThresholdQuery{
		TaxYear:                year,
		IsSingle:               !status.UsesJointThreshold(),
		CostOfLivingAdjustment: cola,
	})
	fmt.Fprintf(out, "%d %s excess business loss threshold: %s\n", year, status, output.FormatCurrency(amount))
	return nil
}
