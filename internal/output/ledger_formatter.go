package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/taxforms/internal/domain"
)

var ledgerColumns = []struct {
	header string
	width  int
}{
	{"Interest", 16}, {"Year", 6}, {"At-risk c/o", 14}, {"Passive c/o", 14},
	{"EBL", 14}, {"NOL ded.", 14}, {"NOL c/o", 14}, {"Loss yr", 8}, {"Source", 9},
}

// FormatLedger renders ledger records as console, json or csv.
func FormatLedger(records []domain.LedgerRecord, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "console":
		return ledgerConsole(records), nil
	case "json":
		if records == nil {
			records = []domain.LedgerRecord{}
		}
		return json.MarshalIndent(records, "", "  ")
	case "csv":
		return ledgerCSV(records)
	default:
		return nil, fmt.Errorf("%w: %q for ledger output (use console, json or csv)", ErrUnsupportedFormat, format)
	}
}

func ledgerRow(r domain.LedgerRecord) []string {
	lossYear := ""
	if r.NOLLossYear > 0 {
		lossYear = strconv.Itoa(r.NOLLossYear)
	}
	return []string{
		r.InterestID,
		strconv.Itoa(r.TaxYear),
		FormatCurrency(r.AtRiskCarryover),
		FormatCurrency(r.PassiveCarryover),
		FormatCurrency(r.ExcessBusinessLoss),
		FormatCurrency(r.NOLDeduction),
		FormatCurrency(r.NOLCarryover),
		lossYear,
		string(r.Source),
	}
}

func ledgerConsole(records []domain.LedgerRecord) []byte {
	var buf bytes.Buffer
	if len(records) == 0 {
		fmt.Fprintln(&buf, SubtleStyle.Render("No ledger records."))
		return buf.Bytes()
	}

	header := make([]string, len(ledgerColumns))
	for i, c := range ledgerColumns {
		header[i] = lipgloss.NewStyle().Bold(true).Width(c.width).Render(c.header)
	}
	fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, r := range records {
		cells := ledgerRow(r)
		for i, c := range ledgerColumns {
			cells[i] = lipgloss.NewStyle().Width(c.width).Render(cells[i])
		}
		fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r.Notes != "" {
			fmt.Fprintln(&buf, SubtleStyle.Render("  "+r.Notes))
		}
	}
	return buf.Bytes()
}

func ledgerCSV(records []domain.LedgerRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"InterestID", "TaxYear", "AtRiskLoss", "AtRiskCarryover", "PassiveLoss", "PassiveCarryover",
		"ExcessBusinessLoss", "NOLDeduction", "NOLCarryover", "NOLLossYear", "Source", "Notes", "UpdatedAt"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.InterestID,
			strconv.Itoa(r.TaxYear),
			FormatAmount(r.AtRiskLoss),
			FormatAmount(r.AtRiskCarryover),
			FormatAmount(r.PassiveLoss),
			FormatAmount(r.PassiveCarryover),
			FormatAmount(r.ExcessBusinessLoss),
			FormatAmount(r.NOLDeduction),
			FormatAmount(r.NOLCarryover),
			strconv.Itoa(r.NOLLossYear),
			string(r.Source),
			r.Notes,
			r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
