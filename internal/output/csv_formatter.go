package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/taxforms/internal/domain"
)

// CSVFormatter writes every computed line, one row per form line.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ReturnReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Line", "Description", "Amount"}); err != nil {
		return nil, err
	}
	for _, s := range Sections(report) {
		for _, l := range s.Lines {
			if err := w.Write([]string{s.Title, l.Line, l.Label, FormatAmount(l.Amount)}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
