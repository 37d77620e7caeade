// Package report assembles collected findings into the sectioned
// report both exporters consume.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"supportkit/pkg/health"
	"supportkit/pkg/logscan"
	"supportkit/pkg/service"
)

// HighUsagePercent is the threshold for the disk/memory/CPU health
// flags in the summary.
const HighUsagePercent = 90.0

// Placeholder is how invalid metrics render in exports.
const Placeholder = "N/A"

// Report is the immutable result of one run. Snapshot and Finding
// are nil for modes that skipped them; their sections are then
// absent, not placeholders.
type Report struct {
	ID          string
	Name        string
	GeneratedAt time.Time
	Snapshot    *health.Snapshot
	Services    []service.Status
	Finding     *logscan.Finding
}

// Assemble builds a Report. Pure aggregation; no failure modes.
func Assemble(name string, snap *health.Snapshot, services []service.Status, finding *logscan.Finding) *Report {
	return &Report{
		ID:          uuid.New().String(),
		Name:        name,
		GeneratedAt: time.Now(),
		Snapshot:    snap,
		Services:    services,
		Finding:     finding,
	}
}

// Stamp is the filesystem-safe timestamp used in output names.
func (r *Report) Stamp() string {
	return r.GeneratedAt.Format("20060102_150405")
}

// DiskHigh reports whether any disk is at or above the threshold.
func (r *Report) DiskHigh() bool {
	if r.Snapshot == nil {
		return false
	}
	for _, d := range r.Snapshot.Disks {
		if d.UsedPercent.Valid && d.UsedPercent.Val >= HighUsagePercent {
			return true
		}
	}
	return false
}

// MemHigh reports whether memory usage is at or above the threshold.
func (r *Report) MemHigh() bool {
	return r.Snapshot != nil &&
		r.Snapshot.Memory.UsedPercent.Valid &&
		r.Snapshot.Memory.UsedPercent.Val >= HighUsagePercent
}

// CPUHigh reports whether CPU load is at or above the threshold.
func (r *Report) CPUHigh() bool {
	return r.Snapshot != nil &&
		r.Snapshot.CPU.LoadPercent.Valid &&
		r.Snapshot.CPU.LoadPercent.Val >= HighUsagePercent
}

// KV is one ordered summary entry.
type KV struct {
	Key   string
	Value string
}

// Summary returns the report overview in a fixed order, identical
// across export formats.
func (r *Report) Summary() []KV {
	out := []KV{
		{"report_id", r.ID},
		{"generated_at", r.GeneratedAt.Format("2006-01-02T15:04:05")},
	}

	if s := r.Snapshot; s != nil {
		out = append(out,
			KV{"hostname", s.Hostname},
			KV{"os", s.OS + " " + s.OSVersion},
			KV{"memory_used_percent", FormatPercent(s.Memory.UsedPercent)},
			KV{"disk_count", strconv.Itoa(len(s.Disks))},
			KV{"services_checked", strconv.Itoa(len(r.Services))},
			KV{"health_flag_disk_90", yesNo(r.DiskHigh())},
			KV{"health_flag_mem_90", yesNo(r.MemHigh())},
			KV{"health_flag_cpu_90", yesNo(r.CPUHigh())},
		)
	}

	if f := r.Finding; f != nil {
		out = append(out,
			KV{"log_file", f.File},
			KV{"log_total_lines", strconv.Itoa(f.TotalLines)},
			KV{"log_matched_lines", strconv.Itoa(f.MatchedLines)},
		)
		if kw, count, ok := f.TopKeyword(); ok {
			out = append(out,
				KV{"log_top_keyword", kw},
				KV{"log_top_keyword_count", strconv.Itoa(count)},
			)
		}
	}

	return out
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// FormatValue renders an optional metric with the given precision,
// or the placeholder.
func FormatValue(v health.Value, decimals int) string {
	if !v.Valid {
		return Placeholder
	}
	return strconv.FormatFloat(v.Val, 'f', decimals, 64)
}

// FormatPercent renders a percentage with two decimals and a sign.
func FormatPercent(v health.Value) string {
	if !v.Valid {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%%", v.Val)
}

// FormatGB renders a byte value in gibibytes with two decimals.
func FormatGB(v health.Value) string {
	if !v.Valid {
		return Placeholder
	}
	return strconv.FormatFloat(v.Val/(1024*1024*1024), 'f', 2, 64)
}
