package report

import (
	"testing"
	"time"

	"supportkit/pkg/health"
	"supportkit/pkg/logscan"
	"supportkit/pkg/service"
)

func testSnapshot() *health.Snapshot {
	return &health.Snapshot{
		Timestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		Hostname:  "host-1",
		OS:        "linux",
		OSVersion: "6.8.0",
		Disks: []health.Disk{
			{
				Mount:       "/",
				TotalBytes:  health.Some(100 * 1024 * 1024 * 1024),
				UsedBytes:   health.Some(95 * 1024 * 1024 * 1024),
				FreeBytes:   health.Some(5 * 1024 * 1024 * 1024),
				UsedPercent: health.Some(95),
			},
		},
		Memory: health.Memory{
			TotalBytes:  health.Some(16 * 1024 * 1024 * 1024),
			UsedBytes:   health.Some(8 * 1024 * 1024 * 1024),
			UsedPercent: health.Some(50),
		},
		CPU: health.CPU{
			LogicalCores: health.Some(8),
			LoadPercent:  health.Some(12.5),
		},
	}
}

func testFinding() *logscan.Finding {
	return &logscan.Finding{
		File:         "/var/log/app.log",
		Keywords:     []string{"error", "warn"},
		TotalLines:   100,
		MatchedLines: 5,
		ByKeyword:    map[string]int{"error": 4, "warn": 2},
		Samples: []logscan.Sample{
			{LineNo: 3, Keyword: "error", Text: "error: boom"},
		},
	}
}

func TestAssemble(t *testing.T) {
	r := Assemble("it_support_report", testSnapshot(), nil, testFinding())

	if r.ID == "" {
		t.Error("report has no ID")
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}
	if r.Stamp() == "" {
		t.Error("Stamp is empty")
	}
}

func TestHealthFlags(t *testing.T) {
	r := Assemble("r", testSnapshot(), nil, nil)

	if !r.DiskHigh() {
		t.Error("DiskHigh = false; disk is at 95%")
	}
	if r.MemHigh() {
		t.Error("MemHigh = true; memory is at 50%")
	}
	if r.CPUHigh() {
		t.Error("CPUHigh = true; load is at 12.5%")
	}

	// Threshold is inclusive.
	snap := testSnapshot()
	snap.Memory.UsedPercent = health.Some(90)
	if r := Assemble("r", snap, nil, nil); !r.MemHigh() {
		t.Error("MemHigh = false at exactly 90%")
	}
}

func TestHealthFlagsWithoutSnapshot(t *testing.T) {
	r := Assemble("r", nil, nil, testFinding())
	if r.DiskHigh() || r.MemHigh() || r.CPUHigh() {
		t.Error("flags must be false without a snapshot")
	}
}

func TestSummaryOrdering(t *testing.T) {
	r := Assemble("r", testSnapshot(), []service.Status{
		{Name: "sshd", State: service.StateRunning},
	}, testFinding())

	summary := r.Summary()
	wantKeys := []string{
		"report_id", "generated_at", "hostname", "os",
		"memory_used_percent", "disk_count", "services_checked",
		"health_flag_disk_90", "health_flag_mem_90", "health_flag_cpu_90",
		"log_file", "log_total_lines", "log_matched_lines",
		"log_top_keyword", "log_top_keyword_count",
	}
	if len(summary) != len(wantKeys) {
		t.Fatalf("got %d summary entries; want %d", len(summary), len(wantKeys))
	}
	for i, kv := range summary {
		if kv.Key != wantKeys[i] {
			t.Errorf("summary[%d] = %s; want %s", i, kv.Key, wantKeys[i])
		}
	}

	byKey := make(map[string]string)
	for _, kv := range summary {
		byKey[kv.Key] = kv.Value
	}
	if byKey["health_flag_disk_90"] != "YES" {
		t.Errorf("disk flag = %s; want YES", byKey["health_flag_disk_90"])
	}
	if byKey["log_top_keyword"] != "error" {
		t.Errorf("top keyword = %s; want error", byKey["log_top_keyword"])
	}
}

func TestSummaryOmitsSkippedComponents(t *testing.T) {
	r := Assemble("r", nil, nil, testFinding())
	for _, kv := range r.Summary() {
		if kv.Key == "hostname" || kv.Key == "memory_used_percent" {
			t.Errorf("summary contains %s without a snapshot", kv.Key)
		}
	}

	r = Assemble("r", testSnapshot(), nil, nil)
	for _, kv := range r.Summary() {
		if kv.Key == "log_file" {
			t.Error("summary contains log_file without a finding")
		}
	}
}

func TestSectionsOmitSkippedComponents(t *testing.T) {
	names := func(r *Report) []string {
		var out []string
		for _, s := range r.Sections() {
			out = append(out, s.Name)
		}
		return out
	}

	full := names(Assemble("r", testSnapshot(), nil, testFinding()))
	if len(full) != 4 {
		t.Errorf("full report sections = %v; want 4", full)
	}

	logOnly := names(Assemble("r", nil, nil, testFinding()))
	if len(logOnly) != 2 || logOnly[1] != SectionLogFindings {
		t.Errorf("log-only sections = %v; want summary + log_findings", logOnly)
	}

	healthOnly := names(Assemble("r", testSnapshot(), nil, nil))
	if len(healthOnly) != 3 {
		t.Errorf("health-only sections = %v; want 3", healthOnly)
	}
}

func TestSystemHealthRowsPerDisk(t *testing.T) {
	snap := testSnapshot()
	snap.Disks = append(snap.Disks, health.Disk{Mount: "/home"})
	r := Assemble("r", snap, nil, nil)

	rows := r.systemHealthRows()
	if len(rows) != 3 { // header + 2 disks
		t.Fatalf("got %d rows; want 3", len(rows))
	}
	if len(rows[1]) != len(rows[0]) {
		t.Errorf("row width %d != header width %d", len(rows[1]), len(rows[0]))
	}
	// Metrics the second disk could not read render as placeholders.
	if rows[2][5] != Placeholder {
		t.Errorf("missing disk total = %q; want %q", rows[2][5], Placeholder)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(health.Value{}, 2); got != Placeholder {
		t.Errorf("invalid value = %q; want %q", got, Placeholder)
	}
	if got := FormatValue(health.Some(12.5), 2); got != "12.50" {
		t.Errorf("got %q; want 12.50", got)
	}
	if got := FormatGB(health.Some(1536 * 1024 * 1024)); got != "1.50" {
		t.Errorf("got %q; want 1.50", got)
	}
}

func TestSortedKeywords(t *testing.T) {
	f := &logscan.Finding{
		Keywords:  []string{"warn", "error", "fatal"},
		ByKeyword: map[string]int{"warn": 2, "error": 2, "fatal": 5},
	}
	got := sortedKeywords(f)
	want := []string{"fatal", "error", "warn"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedKeywords = %v; want %v", got, want)
		}
	}
}
