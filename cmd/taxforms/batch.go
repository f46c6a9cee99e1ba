package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/internal/output"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <return.yaml>...",
		Short: "Compute many returns concurrently",
		Long: `Compute every listed return with bounded concurrency and print a one-line summary
per return, in argument order. The first failing return stops the batch.
With --output-dir, a report file is also written for each return.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().IntP("concurrency", "j", 0, "returns computed at once (default: GOMAXPROCS)")
	cmd.Flags().StringP("format", "f", "", "report format written with --output-dir")
	cmd.Flags().StringP("output-dir", "o", "", "write a report per return to this directory")
	cmd.Flags().String("brackets", "", "YAML bracket table merged over the bundled one")
	cmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	_ = viper.BindPFlag("batch.concurrency", cmd.Flags().Lookup("concurrency"))
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	inputs, err := config.NewInputParser().LoadAll(args)
	if err != nil {
		return err
	}

	if show, _ := cmd.Flags().GetBool("progress"); show {
		bar := newBatchProgress(cmd, len(inputs))
		engine.OnReturnDone = func(*domain.ReturnReport) {
			if err := bar.Add(1); err != nil {
				logger.Warnf("progress bar: %v", err)
			}
		}
	}

	reports, err := engine.RunReturns(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, batchHeader())
	for _, r := range reports {
		fmt.Fprintln(out, batchRow(r))
	}

	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		return nil
	}
	format := outputFormat(cmd)
	for _, r := range reports {
		files, err := output.GenerateReport(r, format, dir)
		if err != nil {
			return fmt.Errorf("failed to write report for %s: %w", r.Name, err)
		}
		for _, f := range files {
			fmt.Fprintln(out, output.SubtleStyle.Render(f))
		}
	}
	return nil
}

func newBatchProgress(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	w := cmd.ErrOrStderr()
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Computing returns...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

var batchWidths = []int{28, 6, 6, 16, 16, 16, 16}

func batchCells(cells []string, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		s := style.Width(batchWidths[i])
		if i >= 3 {
			s = s.Align(lipgloss.Right)
		}
		rendered[i] = s.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func batchHeader() string {
	return batchCells([]string{"Return", "Year", "Status", "AGI", "Taxable", "Excess loss", "Est. tax"},
		lipgloss.NewStyle().Bold(true))
}

func batchRow(r *domain.ReturnReport) string {
	f := r.Form1040
	tax := "-"
	if r.FederalTax != nil {
		tax = output.FormatCurrency(r.FederalTax.TotalTax)
	}
	return batchCells([]string{
		truncateName(r.Name, 27),
		fmt.Sprint(f.TaxYear),
		string(f.FilingStatus),
		output.FormatCurrency(f.Line11),
		output.FormatCurrency(f.Line15),
		output.FormatCurrency(f.Schedule1.Form461.Line16),
		tax,
	}, lipgloss.NewStyle())
}

// truncateName shortens name to at most limit runes, marking the cut with an ellipsis.
func truncateName(name string, limit int) string {
	runes := []rune(name)
	if len(runes) <= limit {
		return name
	}
	return string(runes[:limit-3]) + "..."
}
