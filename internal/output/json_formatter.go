package output

import (
	"encoding/json"

	"github.com/rpgo/taxforms/internal/domain"
)

// JSONFormatter serializes the computed return as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.ReturnReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
