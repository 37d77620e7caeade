package cmd

import (
	"fmt"
	"log"

	"supportkit/pkg/report"
)

// Run executes the full workflow: health, log scan, export. The log
// path is validated up front; a scan failure after collection has
// started degrades to a health-only report.
func Run(args []string) int {
	cfg, err := initConfig("run", args)
	if err != nil {
		return fail(err)
	}
	if err := validateLog(cfg.LogPath); err != nil {
		return fail(err)
	}

	printHeader("FULL WORKFLOW: HEALTH + LOG + EXPORT")
	snap, services := collectHealth(cfg)

	finding, err := scanLog(cfg)
	if err != nil {
		log.Printf("Warning: log scan failed (%v); continuing with system health only.", err)
		finding = nil
	}

	printSnapshot(snap, services)
	if finding != nil {
		fmt.Println("\nLog Summary:")
		printFinding(finding)
	}

	r := report.Assemble(cfg.ReportName, snap, services, finding)
	if err := exportReport(cfg, r); err != nil {
		return fail(err)
	}
	return ExitOK
}
