package report

import (
	"sort"
	"strconv"

	"supportkit/pkg/logscan"
)

// Section names shared by the exporters: CSV file basenames and XLSX
// sheet titles derive from these.
const (
	SectionSummary      = "summary"
	SectionSystemHealth = "system_health"
	SectionServices     = "services"
	SectionLogFindings  = "log_findings"
)

// Section is one exportable table of the report.
type Section struct {
	Name string
	Rows [][]string
}

// Sections returns the populated report tables in export order.
// Sections whose source data was skipped are omitted entirely.
func (r *Report) Sections() []Section {
	out := []Section{{Name: SectionSummary, Rows: r.summaryRows()}}
	if r.Snapshot != nil {
		out = append(out,
			Section{Name: SectionSystemHealth, Rows: r.systemHealthRows()},
			Section{Name: SectionServices, Rows: r.serviceRows()},
		)
	}
	if r.Finding != nil {
		out = append(out, Section{Name: SectionLogFindings, Rows: r.logRows()})
	}
	return out
}

func (r *Report) summaryRows() [][]string {
	rows := [][]string{{"key", "value"}}
	for _, kv := range r.Summary() {
		rows = append(rows, []string{kv.Key, kv.Value})
	}
	return rows
}

func (r *Report) systemHealthRows() [][]string {
	s := r.Snapshot
	rows := [][]string{{
		"timestamp", "hostname", "os", "os_version", "mount",
		"disk_total_gb", "disk_used_gb", "disk_free_gb", "disk_used_percent",
		"mem_total_gb", "mem_used_gb", "mem_available_gb", "mem_used_percent",
		"cpu_cores_logical", "cpu_load_percent",
	}}

	row := func(mount string, diskCols []string) []string {
		out := []string{
			s.Timestamp.Format("2006-01-02T15:04:05"),
			s.Hostname, s.OS, s.OSVersion, mount,
		}
		out = append(out, diskCols...)
		return append(out,
			FormatGB(s.Memory.TotalBytes),
			FormatGB(s.Memory.UsedBytes),
			FormatGB(s.Memory.AvailableBytes),
			FormatValue(s.Memory.UsedPercent, 2),
			FormatValue(s.CPU.LogicalCores, 0),
			FormatValue(s.CPU.LoadPercent, 2),
		)
	}

	if len(s.Disks) == 0 {
		rows = append(rows, row("", []string{Placeholder, Placeholder, Placeholder, Placeholder}))
		return rows
	}
	for _, d := range s.Disks {
		rows = append(rows, row(d.Mount, []string{
			FormatGB(d.TotalBytes),
			FormatGB(d.UsedBytes),
			FormatGB(d.FreeBytes),
			FormatValue(d.UsedPercent, 2),
		}))
	}
	return rows
}

func (r *Report) serviceRows() [][]string {
	rows := [][]string{{"name", "state", "detail"}}
	for _, st := range r.Services {
		rows = append(rows, []string{st.Name, string(st.State), st.Detail})
	}
	return rows
}

func (r *Report) logRows() [][]string {
	f := r.Finding
	rows := [][]string{
		{"file", f.File},
		{"total_lines", strconv.Itoa(f.TotalLines)},
		{"matched_lines", strconv.Itoa(f.MatchedLines)},
		{""},
		{"keyword", "count"},
	}
	for _, kw := range sortedKeywords(f) {
		rows = append(rows, []string{kw, strconv.Itoa(f.ByKeyword[kw])})
	}
	rows = append(rows, []string{""}, []string{"sample_line_no", "keyword", "line"})
	for _, s := range f.Samples {
		rows = append(rows, []string{strconv.Itoa(s.LineNo), s.Keyword, s.Text})
	}
	return rows
}

// sortedKeywords orders keywords by hit count descending, then name.
func sortedKeywords(f *logscan.Finding) []string {
	out := make([]string, len(f.Keywords))
	copy(out, f.Keywords)
	sort.SliceStable(out, func(i, j int) bool {
		if f.ByKeyword[out[i]] != f.ByKeyword[out[j]] {
			return f.ByKeyword[out[i]] > f.ByKeyword[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
