package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/taxforms/internal/domain"
)

// PDFFormatter renders one page per form, showing every non-zero line and the totals.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.ReturnReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 24, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	pdf.SetTitle(report.Name, false)

	pdf.SetHeaderFunc(func() { drawPageHeader(pdf, report) })
	pdf.SetFooterFunc(func() { drawPageFooter(pdf, report) })

	pdf.AddPage()
	drawSummaryPage(pdf, report)
	for _, s := range Sections(report) {
		pdf.AddPage()
		drawSection(pdf, s)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPageHeader(pdf *fpdf.Fpdf, report *domain.ReturnReport) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, 10, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, 11.5)
	title := fmt.Sprintf("%d FEDERAL RETURN  %s", report.Form1040.TaxYear, report.Name)
	pdf.CellFormat(contentW-34, 7, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(30, 7, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(24)
}

func drawPageFooter(pdf *fpdf.Fpdf, report *domain.ReturnReport) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetY(-14)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, "Worksheet only. Not for filing.", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, fmt.Sprintf("Status %s | computed %s", report.Form1040.FilingStatus,
		report.ComputedAt.Format("2006-01-02 15:04")), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawSummaryPage(pdf *fpdf.Fpdf, report *domain.ReturnReport) {
	f := report.Form1040
	rows := []LineItem{
		total("9", "Total income", f.Line9),
		total("11", "Adjusted gross income", f.Line11),
		total("15", "Taxable income", f.Line15),
		total("24", "Total tax", f.Line24),
		total("33", "Total payments", f.Line33),
		total("35a", "Refund", f.Line35a),
		total("37", "Amount you owe", f.Line37),
		total("461/16", "Excess business loss", f.Schedule1.Form461.Line16),
		total("D/21", "Allowed capital gain or (loss)", f.ScheduleD.Line21),
	}
	if report.FederalTax != nil {
		rows = append(rows, total("", "Estimated federal tax", report.FederalTax.TotalTax))
	}
	if report.StateTax != nil {
		rows = append(rows, total("", "Estimated "+report.StateTax.State+" tax", report.StateTax.TotalTax))
	}
	drawSection(pdf, FormSection{Title: "SUMMARY", Lines: rows})

	if len(report.Observations) == 0 {
		return
	}
	marginL, _, _, _ := pdf.GetMargins()
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginL)
	pdf.CellFormat(0, 6, "NOTES", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, o := range report.Observations {
		pdf.SetX(marginL)
		pdf.MultiCell(0, 5, "- "+o, "", "L", false)
	}
}

func drawSection(pdf *fpdf.Fpdf, s FormSection) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR
	lineW := contentW * 0.10
	amountW := contentW * 0.25
	labelW := contentW - lineW - amountW

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginL)
	pdf.CellFormat(contentW, 7, s.Title, "1", 1, "L", true, 0, "")

	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetX(marginL)
	pdf.CellFormat(lineW, 6.5, "Line", "1", 0, "C", true, 0, "")
	pdf.CellFormat(labelW, 6.5, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountW, 6.5, "Amount", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	rowH := 6.0
	for i, l := range s.Visible() {
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		style := ""
		if l.Total {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8.5)
		pdf.SetX(marginL)
		pdf.CellFormat(lineW, rowH, l.Line, "1", 0, "C", true, 0, "")
		pdf.CellFormat(labelW, rowH, l.Label, "1", 0, "L", true, 0, "")
		if l.Amount.IsNegative() {
			pdf.SetTextColor(180, 30, 30)
		}
		pdf.CellFormat(amountW, rowH, FormatCurrency(l.Amount), "1", 1, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}
