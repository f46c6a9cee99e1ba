package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML worksheet of the return.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"negative": func(d decimal.Decimal) bool { return d.IsNegative() },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ReturnReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ReturnReport
		Sections []FormSection
	}{report, Sections(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
