// Package graphing renders an optional HTML chart page for a report.
package graphing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"supportkit/pkg/report"
)

// WriteCharts renders the chart page next to the report and returns
// its path. Reports with neither disks nor findings produce nothing.
func WriteCharts(r *report.Report, dir string) (string, error) {
	page := components.NewPage()
	page.PageTitle = "supportkit report " + r.Stamp()

	n := 0
	if c := diskChart(r); c != nil {
		page.AddCharts(c)
		n++
	}
	if c := keywordChart(r); c != nil {
		page.AddCharts(c)
		n++
	}
	if n == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create graph directory: %w", err)
	}
	path := filepath.Join(dir, r.Name+"_charts_"+r.Stamp()+".html")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart page: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("render chart page: %w", err)
	}
	return path, nil
}

// diskChart plots used percent per mount.
func diskChart(r *report.Report) *charts.Bar {
	if r.Snapshot == nil || len(r.Snapshot.Disks) == 0 {
		return nil
	}

	var labels []string
	var data []opts.BarData
	for _, d := range r.Snapshot.Disks {
		if !d.UsedPercent.Valid {
			continue
		}
		labels = append(labels, d.Mount)
		data = append(data, opts.BarData{Value: d.UsedPercent.Val})
	}
	if len(data) == 0 {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Disk usage (%)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)
	bar.SetXAxis(labels).AddSeries("used %", data)
	return bar
}

// keywordChart plots match counts per keyword.
func keywordChart(r *report.Report) *charts.Bar {
	if r.Finding == nil || len(r.Finding.Keywords) == 0 {
		return nil
	}

	var labels []string
	var data []opts.BarData
	for _, kw := range r.Finding.Keywords {
		labels = append(labels, kw)
		data = append(data, opts.BarData{Value: r.Finding.ByKeyword[kw]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Log keyword matches"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)
	bar.SetXAxis(labels).AddSeries("matches", data)
	return bar
}
