package main

import (
	"fmt"

	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/output"
	"github.com/spf13/cobra"
)

func computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <return.yaml>",
		Short: "Compute a return and render it",
		Long: `Compute Schedule D, Form 461, Schedule 1, Form 1040 and any Form 172 parts for a
YAML return file. Output goes to stdout unless --output-dir is set, in which case
a timestamped file is written per format ("all" writes every file format).`,
		Args: cobra.ExactArgs(1),
		RunE: runCompute,
	}

	cmd.Flags().StringP("format", "f", "", "output format (console, json, csv, html, pdf, all)")
	cmd.Flags().StringP("output-dir", "o", "", "write the report to this directory instead of stdout")
	cmd.Flags().String("brackets", "", "YAML bracket table merged over the bundled one")
	return cmd
}

func runCompute(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	input, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	report, err := engine.ComputeReturn(*input)
	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", args[0], err)
	}

	format := outputFormat(cmd)
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		if n := output.NormalizeFormatName(format); n == "all" || n == "pdf" {
			return fmt.Errorf("format %q needs --output-dir", format)
		}
		return output.Render(cmd.OutOrStdout(), report, format)
	}

	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
