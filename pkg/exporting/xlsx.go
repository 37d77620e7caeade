package exporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"supportkit/pkg/report"
)

// XLSXExporter writes the whole report as one workbook, one sheet
// per section.
type XLSXExporter struct{}

func (e *XLSXExporter) Name() string { return "xlsx" }

// sheetTitles maps section names to workbook sheet titles.
var sheetTitles = map[string]string{
	report.SectionSummary:      "Summary",
	report.SectionSystemHealth: "SystemHealth",
	report.SectionServices:     "Services",
	report.SectionLogFindings:  "LogFindings",
}

const (
	minColWidth = 8
	maxColWidth = 60
)

func (e *XLSXExporter) Export(r *report.Report, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(destDir, r.Name+"_"+r.Stamp()+".xlsx")

	wb := excelize.NewFile()
	defer wb.Close()

	for i, section := range r.Sections() {
		title := sheetTitles[section.Name]
		if title == "" {
			title = section.Name
		}
		if i == 0 {
			if err := wb.SetSheetName("Sheet1", title); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := wb.NewSheet(title); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", title, err)
			}
		}
		if err := writeSheet(wb, title, section.Rows); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", title, err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	return []string{path}, nil
}

func writeSheet(wb *excelize.File, sheet string, rows [][]string) error {
	widths := make(map[int]int)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
		if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		w := width + 2
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := wb.SetColWidth(sheet, name, name, float64(w)); err != nil {
			return err
		}
	}
	return nil
}
