package config

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := New()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	apply := GetFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if err := apply(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)

	if cfg.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %s; want %s", cfg.OutDir, DefaultOutDir)
	}
	if cfg.Export != DefaultExport {
		t.Errorf("Export = %s; want %s", cfg.Export, DefaultExport)
	}
	if cfg.ReportName != DefaultReportName {
		t.Errorf("ReportName = %s; want %s", cfg.ReportName, DefaultReportName)
	}
	if cfg.SampleLimit != DefaultSampleLimit {
		t.Errorf("SampleLimit = %d; want %d", cfg.SampleLimit, DefaultSampleLimit)
	}
	if cfg.Keywords != nil {
		t.Errorf("Keywords = %v; want nil (scanner applies the default)", cfg.Keywords)
	}
}

func TestFlagParsing(t *testing.T) {
	cfg := parse(t,
		"--log", "/var/log/syslog",
		"--keywords", "error, timeout ,fatal",
		"--services", "sshd,cron",
		"--export", "CSV",
		"--case-sensitive",
		"--sample-limit", "10",
	)

	if cfg.LogPath != "/var/log/syslog" {
		t.Errorf("LogPath = %s", cfg.LogPath)
	}
	if want := []string{"error", "timeout", "fatal"}; !reflect.DeepEqual(cfg.Keywords, want) {
		t.Errorf("Keywords = %v; want %v", cfg.Keywords, want)
	}
	if want := []string{"sshd", "cron"}; !reflect.DeepEqual(cfg.Services, want) {
		t.Errorf("Services = %v; want %v", cfg.Services, want)
	}
	if cfg.Export != "csv" {
		t.Errorf("Export = %s; want csv (normalized)", cfg.Export)
	}
	if !cfg.CaseSensitive {
		t.Error("CaseSensitive = false")
	}
	if cfg.SampleLimit != 10 {
		t.Errorf("SampleLimit = %d; want 10", cfg.SampleLimit)
	}
}

func TestBadExportFormat(t *testing.T) {
	cfg := New()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	apply := GetFlags(fs, cfg)
	if err := fs.Parse([]string{"--export", "pdf"}); err != nil {
		t.Fatal(err)
	}
	if err := apply(); err == nil {
		t.Fatal("expected an error for an unsupported export format")
	}
}

func TestNegativeSampleLimitClamped(t *testing.T) {
	cfg := parse(t, "--sample-limit", "-5")
	if cfg.SampleLimit != 0 {
		t.Errorf("SampleLimit = %d; want 0", cfg.SampleLimit)
	}
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
keywords: [warn, fatal]
services: [nginx]
out_dir: /tmp/reports
export: csv
report_name: nightly
sample_limit: 25
`)

	cfg := parse(t, "--config", path)
	if want := []string{"warn", "fatal"}; !reflect.DeepEqual(cfg.Keywords, want) {
		t.Errorf("Keywords = %v; want %v", cfg.Keywords, want)
	}
	if cfg.OutDir != "/tmp/reports" {
		t.Errorf("OutDir = %s", cfg.OutDir)
	}
	if cfg.Export != "csv" {
		t.Errorf("Export = %s", cfg.Export)
	}
	if cfg.ReportName != "nightly" {
		t.Errorf("ReportName = %s", cfg.ReportName)
	}
	if cfg.SampleLimit != 25 {
		t.Errorf("SampleLimit = %d", cfg.SampleLimit)
	}
}

func TestFlagsBeatConfigFile(t *testing.T) {
	path := writeConfig(t, `
keywords: [warn]
export: csv
sample_limit: 25
`)

	cfg := parse(t, "--config", path, "--keywords", "error", "--export", "xlsx")
	if want := []string{"error"}; !reflect.DeepEqual(cfg.Keywords, want) {
		t.Errorf("Keywords = %v; want the flag value", cfg.Keywords)
	}
	if cfg.Export != "xlsx" {
		t.Errorf("Export = %s; want the flag value", cfg.Export)
	}
	// Unset flags still take the file values.
	if cfg.SampleLimit != 25 {
		t.Errorf("SampleLimit = %d; want the file value 25", cfg.SampleLimit)
	}
}

func TestMissingConfigFile(t *testing.T) {
	cfg := New()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	apply := GetFlags(fs, cfg)
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}); err != nil {
		t.Fatal(err)
	}
	if err := apply(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"error", []string{"error"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
	}
	for _, c := range cases {
		if got := SplitList(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitList(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
