// Package exporting serializes assembled reports. Two formats are
// registered: a CSV directory and a single XLSX workbook. Both emit
// the same section rows, so field values are identical across
// formats.
package exporting

import (
	"fmt"
	"strings"

	"supportkit/pkg/report"
)

// Exporter writes a report under destDir and returns the paths it
// created. A failed export must not leave partial output behind.
type Exporter interface {
	Name() string
	Export(r *report.Report, destDir string) ([]string, error)
}

var registry = make(map[string]Exporter)

// Register adds an exporter to the registry.
func Register(e Exporter) {
	registry[strings.ToLower(e.Name())] = e
}

// Get returns an exporter by format name.
func Get(name string) (Exporter, bool) {
	e, ok := registry[strings.ToLower(name)]
	return e, ok
}

// Export writes the report in the named format.
func Export(r *report.Report, destDir, format string) ([]string, error) {
	e, ok := Get(format)
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return e.Export(r, destDir)
}

func init() {
	Register(&CSVExporter{})
	Register(&XLSXExporter{})
}
