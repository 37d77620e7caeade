package exporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"supportkit/pkg/report"
)

// CSVExporter writes each report section to its own file inside a
// timestamped run directory.
type CSVExporter struct{}

func (e *CSVExporter) Name() string { return "csv" }

func (e *CSVExporter) Export(r *report.Report, destDir string) ([]string, error) {
	runDir := filepath.Join(destDir, r.Name+"_"+r.Stamp())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var paths []string
	for _, section := range r.Sections() {
		path := filepath.Join(runDir, section.Name+".csv")
		if err := writeCSV(path, section.Rows); err != nil {
			os.RemoveAll(runDir)
			return nil, fmt.Errorf("write %s: %w", section.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	w := csv.NewWriter(file)
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
