// Package cmd wires the per-subcommand pipelines: collect, scan,
// assemble, export, summarize.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"supportkit/pkg/config"
	"supportkit/pkg/exporting"
	"supportkit/pkg/graphing"
	"supportkit/pkg/health"
	"supportkit/pkg/logscan"
	"supportkit/pkg/report"
	"supportkit/pkg/service"
)

// Exit codes, matching the CLI contract.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitInputError = 2
	ExitUnexpected = 3
)

// initConfig parses the shared flags for one subcommand.
func initConfig(name string, args []string) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfg := config.New()
	apply := config.GetFlags(fs, cfg)
	fs.Parse(args)
	return cfg, apply()
}

// collectHealth samples metrics and checks the requested services.
// It never fails; unavailable pieces degrade in place.
func collectHealth(cfg *config.Config) (*health.Snapshot, []service.Status) {
	manager := health.NewManager(health.Options{
		CPUSampleInterval: cfg.CPUSampleInterval,
	})
	snap := manager.Collect()

	var services []service.Status
	if len(cfg.Services) > 0 {
		checker := service.NewChecker()
		defer checker.Close()
		services = service.CheckAll(context.Background(), checker, cfg.Services)
	}
	return snap, services
}

// scanLog runs the log scan with the configured options.
func scanLog(cfg *config.Config) (*logscan.Finding, error) {
	return logscan.Scan(cfg.LogPath, logscan.Options{
		Keywords:      cfg.Keywords,
		CaseSensitive: cfg.CaseSensitive,
		SampleLimit:   cfg.SampleLimit,
		MaxLineLength: cfg.MaxLineLength,
	})
}

// validateLog rejects missing or non-file log paths before any work
// happens, so a bad invocation writes nothing.
func validateLog(path string) error {
	if path == "" {
		return fmt.Errorf("--log is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("log file: %s is a directory", path)
	}
	return nil
}

// exportReport writes the report and the optional chart page, and
// prints what was created.
func exportReport(cfg *config.Config, r *report.Report) error {
	paths, err := exporting.Export(r, cfg.OutDir, cfg.Export)
	if err != nil {
		return err
	}

	if cfg.Graphs {
		dir := cfg.GraphDir
		if dir == "" {
			dir = cfg.OutDir
		}
		chartPath, err := graphing.WriteCharts(r, dir)
		if err != nil {
			log.Printf("Warning: chart page failed: %v", err)
		} else if chartPath != "" {
			paths = append(paths, chartPath)
		}
	}

	fmt.Println("\nExported:")
	for _, p := range paths {
		fmt.Printf("  - %s\n", p)
	}
	return nil
}

func printHeader(title string) {
	line := strings.Repeat("=", 72)
	fmt.Println("\n" + line)
	fmt.Println(title)
	fmt.Println(line)
}

func printSnapshot(snap *health.Snapshot, services []service.Status) {
	fmt.Printf("Time      : %s\n", snap.Timestamp.Format("2006-01-02T15:04:05"))
	fmt.Printf("Host      : %s\n", snap.Hostname)
	fmt.Printf("OS        : %s %s\n", snap.OS, snap.OSVersion)
	fmt.Printf("CPU       : cores=%s load=%s%%\n",
		report.FormatValue(snap.CPU.LogicalCores, 0),
		report.FormatValue(snap.CPU.LoadPercent, 2))
	fmt.Printf("Memory    : total=%sGB used=%sGB (%s%%)\n",
		report.FormatGB(snap.Memory.TotalBytes),
		report.FormatGB(snap.Memory.UsedBytes),
		report.FormatValue(snap.Memory.UsedPercent, 2))
	fmt.Println("Disks     :")
	for _, d := range snap.Disks {
		fmt.Printf("  - %s total=%sGB used=%sGB (%s%%) free=%sGB\n",
			d.Mount,
			report.FormatGB(d.TotalBytes),
			report.FormatGB(d.UsedBytes),
			report.FormatValue(d.UsedPercent, 2),
			report.FormatGB(d.FreeBytes))
	}

	if len(services) > 0 {
		fmt.Println("Services  :")
		for _, s := range services {
			if s.Detail != "" {
				fmt.Printf("  - %s: %s (%s)\n", s.Name, s.State, s.Detail)
			} else {
				fmt.Printf("  - %s: %s\n", s.Name, s.State)
			}
		}
	}
}

func printFinding(f *logscan.Finding) {
	fmt.Printf("File      : %s\n", f.File)
	fmt.Printf("Total     : %d lines\n", f.TotalLines)
	fmt.Printf("Matched   : %d lines\n", f.MatchedLines)
	fmt.Println("ByKeyword :")
	for _, kw := range f.Keywords {
		fmt.Printf("  - %s: %d\n", kw, f.ByKeyword[kw])
	}

	if len(f.Samples) > 0 {
		fmt.Println("\nSample matches (first few):")
		limit := len(f.Samples)
		if limit > 10 {
			limit = 10
		}
		for _, s := range f.Samples[:limit] {
			fmt.Printf("  [%d] (%s) %s\n", s.LineNo, s.Keyword, s.Text)
		}
	}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	return ExitInputError
}
