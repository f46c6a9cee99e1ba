package output

import (
	"fmt"
	"io"
	"os"

	"github.com/rpgo/taxforms/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report to a timestamped file in dir. The format "all"
// writes one file per registered formatter except console.
func GenerateReport(report *domain.ReturnReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters {
			if f.Name() == "console" {
				continue
			}
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return files, fmt.Errorf("%s output failed: %w", f.Name(), err)
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats the report and writes it to w
func Render(w io.Writer, report *domain.ReturnReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s output failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReturn writes a return input as YAML
func SaveReturn(input *domain.ReturnInput, filename string) error {
	b, err := yaml.Marshal(input)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
