package output

import (
	"fmt"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
)

// LineItem is one numbered line of a form
type LineItem struct {
	Line   string
	Label  string
	Amount decimal.Decimal
	// Total lines are always shown, even when zero.
	Total bool
}

// FormSection is one form or schedule of a computed return
type FormSection struct {
	Form  string
	Title string
	Lines []LineItem
}

// Visible returns the total lines and every non-zero line
func (s FormSection) Visible() []LineItem {
	out := make([]LineItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		if l.Total || !l.Amount.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

func item(line, label string, amount decimal.Decimal) LineItem {
	return LineItem{Line: line, Label: label, Amount: amount}
}

func total(line, label string, amount decimal.Decimal) LineItem {
	return LineItem{Line: line, Label: label, Amount: amount, Total: true}
}

// Sections lays a computed return out form by form, in filing order
func Sections(r *domain.ReturnReport) []FormSection {
	f := r.Form1040
	sections := []FormSection{
		form1040Section(f),
		schedule1Section(f.Schedule1),
		scheduleDSection(f.ScheduleD),
		form461Section(f.Schedule1.Form461),
	}
	if p1 := f.Form172.Part1; p1 != nil {
		sections = append(sections, form172PartISection(*p1))
	}
	for _, p2 := range f.Form172.Part2 {
		sections = append(sections, form172PartIISection(p2))
	}
	if r.FederalTax != nil {
		sections = append(sections, marginalSection("Federal", *r.FederalTax))
	}
	if r.StateTax != nil {
		sections = append(sections, marginalSection(r.StateTax.State, *r.StateTax))
	}
	return sections
}

func form1040Section(f domain.Form1040Result) FormSection {
	return FormSection{
		Form:  "1040",
		Title: fmt.Sprintf("Form 1040 (%d, %s)", f.TaxYear, f.FilingStatus),
		Lines: []LineItem{
			item("1a", "Wages", f.Line1a),
			item("1z", "Total earned income", f.Line1z),
			item("2a", "Tax-exempt interest", f.Line2a),
			item("2b", "Taxable interest", f.Line2b),
			item("3a", "Qualified dividends", f.Line3a),
			item("3b", "Ordinary dividends", f.Line3b),
			item("4a", "IRA distributions", f.Line4a),
			item("4b", "Taxable IRA distributions", f.Line4b),
			item("5a", "Pensions and annuities", f.Line5a),
			item("5b", "Taxable pensions", f.Line5b),
			item("6a", "Social security benefits", f.Line6a),
			item("6b", "Taxable social security", f.Line6b),
			item("7", "Capital gain or (loss)", f.Line7),
			item("8", "Additional income (Schedule 1)", f.Line8),
			total("9", "Total income", f.Line9),
			item("10", "Adjustments to income", f.Line10),
			total("11", "Adjusted gross income", f.Line11),
			item("12", "Standard or itemized deduction", f.Line12),
			item("13", "Qualified business income deduction", f.Line13),
			item("14", "Total deductions", f.Line14),
			total("15", "Taxable income", f.Line15),
			item("16", "Tax", f.Line16),
			item("17", "Schedule 2, line 3", f.Line17),
			item("18", "Tax before credits", f.Line18),
			item("19", "Child tax credit", f.Line19),
			item("20", "Schedule 3, line 8", f.Line20),
			item("21", "Total credits", f.Line21),
			item("22", "Tax after credits", f.Line22),
			item("23", "Other taxes", f.Line23),
			total("24", "Total tax", f.Line24),
			item("25a", "Withholding from W-2", f.Line25a),
			item("25b", "Withholding from 1099", f.Line25b),
			item("25c", "Other withholding", f.Line25c),
			item("25d", "Total withholding", f.Line25d),
			item("26", "Estimated tax payments", f.Line26),
			item("27", "Earned income credit", f.Line27),
			item("28", "Additional child tax credit", f.Line28),
			item("29", "American opportunity credit", f.Line29),
			item("31", "Schedule 3, line 15", f.Line31),
			item("32", "Other payments and refundable credits", f.Line32),
			total("33", "Total payments", f.Line33),
			item("34", "Overpaid", f.Line34),
			item("35a", "Refund", f.Line35a),
			item("36", "Applied to next year's estimated tax", f.Line36),
			item("37", "Amount you owe", f.Line37),
			item("38", "Estimated tax penalty", f.Line38),
		},
	}
}

func schedule1Section(s domain.Schedule1Result) FormSection {
	return FormSection{
		Form:  "Schedule 1",
		Title: "Schedule 1: Additional Income and Adjustments",
		Lines: []LineItem{
			item("1", "Taxable refunds", s.Line1),
			item("2a", "Alimony received", s.Line2a),
			item("3", "Business income or (loss)", s.Line3),
			item("4", "Other gains or (losses)", s.Line4),
			item("5", "Rental real estate, royalties, partnerships", s.Line5),
			item("6", "Farm income or (loss)", s.Line6),
			item("7", "Unemployment compensation", s.Line7),
			item("8a", "Net operating loss", s.Line8a),
			item("8b", "Gambling", s.Line8b),
			item("8c", "Cancellation of debt", s.Line8c),
			item("8p", "Excess business loss adjustment", s.Line8p),
			item("8z", "Other income", s.Line8z),
			item("9", "Total other income", s.Line9),
			total("10", "Additional income", s.Line10),
			item("11", "Educator expenses", s.Line11),
			item("13", "Health savings account deduction", s.Line13),
			item("15", "Deductible self-employment tax", s.Line15),
			item("16", "SEP, SIMPLE and qualified plans", s.Line16),
			item("17", "Self-employed health insurance", s.Line17),
			item("18", "Early withdrawal penalty", s.Line18),
			item("20", "IRA deduction", s.Line20),
			item("21", "Student loan interest", s.Line21),
			total("26", "Adjustments to income", s.Line26),
		},
	}
}

func scheduleDSection(s domain.ScheduleDResult) FormSection {
	l := s.Lines
	return FormSection{
		Form:  "Schedule D",
		Title: "Schedule D: Capital Gains and Losses",
		Lines: []LineItem{
			item("1a", "Short-term, basis reported", l.Line1a),
			item("1b", "Short-term, Form 8949 box A", l.Line1b),
			item("2", "Short-term, Form 8949 box B", l.Line2),
			item("3", "Short-term, Form 8949 box C", l.Line3),
			item("4", "Short-term from other forms", l.Line4),
			item("5", "Short-term from partnerships and S corporations", l.Line5),
			item("6", "Short-term capital loss carryover", l.Line6),
			total("7", "Net short-term gain or (loss)", s.Line7),
			item("8a", "Long-term, basis reported", l.Line8a),
			item("8b", "Long-term, Form 8949 box D", l.Line8b),
			item("9", "Long-term, Form 8949 box E", l.Line9),
			item("10", "Long-term, Form 8949 box F", l.Line10),
			item("11", "Long-term from other forms", l.Line11),
			item("12", "Long-term from partnerships and S corporations", l.Line12),
			item("13", "Capital gain distributions", l.Line13),
			item("14", "Long-term capital loss carryover", l.Line14),
			total("15", "Net long-term gain or (loss)", s.Line15),
			total("16", "Combined gain or (loss)", s.Line16),
			total("21", "Allowed gain or (loss)", s.Line21),
			item("", "Business portion of allowed amount", s.LimitedBusiness),
			item("", "Personal portion of allowed amount", s.LimitedPersonal),
		},
	}
}

func form461Section(f domain.Form461Result) FormSection {
	return FormSection{
		Form:  "461",
		Title: "Form 461: Limitation on Business Losses",
		Lines: []LineItem{
			item("2", "Other gains or (losses)", f.Line2),
			item("3", "Business income or (loss)", f.Line3),
			item("4", "Rental, royalty and pass-through income or (loss)", f.Line4),
			item("5", "Farm income or (loss)", f.Line5),
			item("6", "Capital gain or (loss)", f.Line6),
			item("7", "Other trade or business income or (loss)", f.Line7),
			item("8", "Other adjustments", f.Line8),
			total("9", "Combined business income or (loss)", f.Line9),
			item("10", "Nonbusiness capital gain or (loss)", f.Line10),
			item("11", "Nonbusiness capital deductions", f.Line11),
			item("12", "Net nonbusiness capital amount", f.Line12),
			item("13", "Nonbusiness capital adjustment", f.Line13),
			total("14", "Business income or (loss) after adjustment", f.Line14),
			total("15", "Threshold", f.Line15),
			total("16", "Excess business loss", f.Line16),
		},
	}
}

func form172PartISection(p domain.Form172PartIResult) FormSection {
	return FormSection{
		Form:  "172",
		Title: fmt.Sprintf("Form 172 Part I: %d Net Operating Loss", p.TaxYear),
		Lines: []LineItem{
			total("1", "Income before NOL adjustments", p.Line1),
			item("2", "Nonbusiness capital losses", p.Line2),
			item("3", "Nonbusiness capital gains", p.Line3),
			item("4", "Excess nonbusiness capital losses", p.Line4),
			item("5", "Excess nonbusiness capital gains", p.Line5),
			item("6", "Nonbusiness deductions", p.Line6),
			item("7", "Nonbusiness income", p.Line7),
			item("8", "Nonbusiness income and gains", p.Line8),
			item("9", "Excess nonbusiness deductions", p.Line9),
			item("10", "Excess nonbusiness income and gains", p.Line10),
			item("11", "Business capital losses", p.Line11),
			item("12", "Business capital gains", p.Line12),
			item("13", "Business gains plus line 10", p.Line13),
			item("14", "Excess business capital losses", p.Line14),
			item("15", "Nondeductible capital losses", p.Line15),
			item("16", "Schedule D combined loss", p.Line16),
			item("17", "Section 1202 exclusion", p.Line17),
			item("18", "Loss after exclusion", p.Line18),
			item("19", "Allowed capital loss", p.Line19),
			item("20", "Loss exceeding the allowance", p.Line20),
			item("21", "Capital loss adjustment", p.Line21),
			item("22", "Other section 1202 exclusion", p.Line22),
			item("23", "NOL deduction from other years", p.Line23),
			total("24", "Net operating loss", p.Line24),
		},
	}
}

func form172PartIISection(p domain.Form172PartIIResult) FormSection {
	lines := []LineItem{
		total("1", "NOL deduction", p.Line1),
		item("2", "Taxable income before NOL", p.Line2),
		item("3", "Net capital loss deduction", p.Line3),
		item("4", "Section 1202 exclusion", p.Line4),
		item("5", "Domestic production deduction", p.Line5),
		item("6", "AGI adjustment", p.Line6),
		item("7", "Itemized deduction adjustment", p.Line7),
		item("8", "Qualified business income deduction", p.Line8),
		total("9", "Modified taxable income", p.Line9),
		total("10", "Carryover to next year", p.Line10),
	}
	if !p.Line13.IsZero() || !p.Line33.IsZero() {
		lines = append(lines,
			item("11", "Adjusted gross income", p.Line11),
			item("12", "NOL-related AGI adjustments", p.Line12),
			item("13", "Modified AGI", p.Line13),
			item("14", "Medical deduction claimed", p.Line14),
			item("15", "Medical expenses", p.Line15),
			item("16", "Medical floor", p.Line16),
			item("17", "Refigured medical deduction", p.Line17),
			item("18", "Medical adjustment", p.Line18),
			item("19", "Mortgage insurance claimed", p.Line19),
			item("20", "Refigured mortgage insurance", p.Line20),
			item("21", "Mortgage insurance adjustment", p.Line21),
			item("22", "Modified AGI for charitable limits", p.Line22),
			item("23", "Charitable contributions claimed", p.Line23),
			item("24", "Refigured charitable contributions", p.Line24),
			item("25", "Charitable adjustment", p.Line25),
			item("26", "Casualty loss claimed", p.Line26),
			item("27", "Casualty loss before floor", p.Line27),
			item("28", "Casualty floor", p.Line28),
			item("29", "Refigured casualty loss", p.Line29),
			item("30", "Casualty adjustment", p.Line30),
			item("31", "Other itemized adjustment", p.Line31),
			item("32", "Phase-out adjustment", p.Line32),
			total("33", "Itemized deduction adjustment", p.Line33),
		)
	}
	return FormSection{
		Form:  "172",
		Title: fmt.Sprintf("Form 172 Part II: %d Carryover", p.TaxYear),
		Lines: lines,
	}
}

func marginalSection(jurisdiction string, m domain.MarginalTaxResult) FormSection {
	lines := make([]LineItem, 0, len(m.Taxes)+1)
	for _, b := range m.Taxes {
		label := fmt.Sprintf("%s of %s", FormatPercentage(b.Rate.Mul(decimal.NewFromInt(100))), FormatCurrency(b.AmountTaxed))
		lines = append(lines, total("", label, b.Tax))
	}
	lines = append(lines, total("", "Total tax", m.TotalTax))
	return FormSection{
		Form:  "tax",
		Title: fmt.Sprintf("%s Tax Estimate (%d)", jurisdiction, m.Year),
		Lines: lines,
	}
}
