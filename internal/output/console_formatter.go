package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/taxforms/internal/domain"
)

// ConsoleFormatter renders a styled terminal view of the return. Zero lines are
// omitted unless they are totals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ReturnReport) ([]byte, error) {
	var buf bytes.Buffer
	f := report.Form1040

	fmt.Fprintln(&buf, TitleStyle.Render(strings.ToUpper(report.Name)))
	fmt.Fprintln(&buf, SubtleStyle.Render(fmt.Sprintf("Tax year %d, filing status %s, computed %s",
		f.TaxYear, f.FilingStatus, report.ComputedAt.Format("2006-01-02 15:04"))))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, BoxStyle.Render(summary(report)))

	for _, s := range Sections(report) {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, TitleStyle.Render(s.Title))
		for _, l := range s.Visible() {
			fmt.Fprintln(&buf, renderLine(l))
		}
	}

	if len(report.Observations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, TitleStyle.Render("Notes"))
		for _, o := range report.Observations {
			fmt.Fprintln(&buf, NoteStyle.Render("• "+o))
		}
	}
	return buf.Bytes(), nil
}

func renderLine(l LineItem) string {
	label := LabelStyle.Render(l.Label)
	if l.Total {
		label = TotalLabelStyle.Render(l.Label)
	}
	amount := AmountStyle.Render(FormatCurrency(l.Amount))
	if l.Amount.IsNegative() {
		amount = NegativeAmountStyle.Render(FormatCurrency(l.Amount))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, LineNumberStyle.Render(l.Line), label, amount)
}

func summary(report *domain.ReturnReport) string {
	f := report.Form1040
	rows := []string{
		fmt.Sprintf("Adjusted gross income  %s", FormatCurrency(f.Line11)),
		fmt.Sprintf("Taxable income         %s", FormatCurrency(f.Line15)),
		fmt.Sprintf("Excess business loss   %s", FormatCurrency(f.Schedule1.Form461.Line16)),
	}
	if report.FederalTax != nil {
		rows = append(rows, fmt.Sprintf("Estimated federal tax  %s", FormatCurrency(report.FederalTax.TotalTax)))
	}
	if report.StateTax != nil {
		rows = append(rows, fmt.Sprintf("Estimated %s tax%s%s", report.StateTax.State,
			strings.Repeat(" ", max(1, 9-len(report.StateTax.State))), FormatCurrency(report.StateTax.TotalTax)))
	}
	switch {
	case f.Line37.IsPositive():
		rows = append(rows, fmt.Sprintf("Amount owed            %s", FormatCurrency(f.Line37)))
	case f.Line35a.IsPositive():
		rows = append(rows, fmt.Sprintf("Refund                 %s", FormatCurrency(f.Line35a)))
	}
	return strings.Join(rows, "\n")
}
