// Package config carries the per-run configuration for supportkit.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything a run needs. Components receive it (or
// fields of it) explicitly; there is no package-level state.
type Config struct {
	LogPath       string
	Keywords      []string
	Services      []string
	OutDir        string
	Export        string
	ReportName    string
	CaseSensitive bool
	SampleLimit   int
	MaxLineLength int

	Graphs   bool
	GraphDir string

	CPUSampleInterval time.Duration
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		OutDir:            DefaultOutDir,
		Export:            DefaultExport,
		ReportName:        DefaultReportName,
		SampleLimit:       DefaultSampleLimit,
		MaxLineLength:     DefaultMaxLineLength,
		CPUSampleInterval: DefaultCPUSampleInterval,
	}
}

// fileConfig is the optional YAML config file shape. Values act as
// defaults; explicitly-set flags win.
type fileConfig struct {
	Keywords    []string `yaml:"keywords"`
	Services    []string `yaml:"services"`
	OutDir      string   `yaml:"out_dir"`
	Export      string   `yaml:"export"`
	ReportName  string   `yaml:"report_name"`
	SampleLimit int      `yaml:"sample_limit"`
}

// GetFlags registers the shared flags on fs and returns an apply
// closure that must be called after fs.Parse.
func GetFlags(fs *flag.FlagSet, cfg *Config) func() error {
	var keywords, services, configPath string

	fs.StringVar(&cfg.LogPath, "log", "", "Path to log file")
	fs.StringVar(&keywords, "keywords", "", "Comma-separated keywords (default: error)")
	fs.StringVar(&services, "services", "", "Comma-separated service names to check")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory")
	fs.StringVar(&cfg.Export, "export", cfg.Export, "Export format: xlsx or csv")
	fs.BoolVar(&cfg.CaseSensitive, "case-sensitive", false, "Enable case-sensitive keyword matching")
	fs.IntVar(&cfg.SampleLimit, "sample-limit", cfg.SampleLimit, "Max matching lines kept as samples")
	fs.BoolVar(&cfg.Graphs, "graphs", false, "Render an HTML chart page alongside the report")
	fs.StringVar(&cfg.GraphDir, "graph-dir", "", "Chart output directory (default: output directory)")
	fs.StringVar(&configPath, "config", "", "Optional YAML config file")

	return func() error {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if configPath != "" {
			fc, err := loadFile(configPath)
			if err != nil {
				return err
			}
			if !set["keywords"] && len(fc.Keywords) > 0 {
				cfg.Keywords = fc.Keywords
			}
			if !set["services"] && len(fc.Services) > 0 {
				cfg.Services = fc.Services
			}
			if !set["out"] && fc.OutDir != "" {
				cfg.OutDir = fc.OutDir
			}
			if !set["export"] && fc.Export != "" {
				cfg.Export = fc.Export
			}
			if fc.ReportName != "" {
				cfg.ReportName = fc.ReportName
			}
			if !set["sample-limit"] && fc.SampleLimit > 0 {
				cfg.SampleLimit = fc.SampleLimit
			}
		}

		if set["keywords"] || len(cfg.Keywords) == 0 {
			cfg.Keywords = SplitList(keywords)
		}
		if set["services"] || len(cfg.Services) == 0 {
			cfg.Services = SplitList(services)
		}
		if cfg.SampleLimit < 0 {
			cfg.SampleLimit = 0
		}
		return cfg.Validate()
	}
}

// Validate rejects values no exporter can act on.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Export)) {
	case "xlsx", "csv":
		c.Export = strings.ToLower(strings.TrimSpace(c.Export))
	default:
		return fmt.Errorf("export must be xlsx or csv, got %q", c.Export)
	}
	if c.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

func loadFile(path string) (*fileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(content, fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
