package cmd

import "supportkit/pkg/report"

// Health runs the metrics + services workflow without a log scan.
func Health(args []string) int {
	cfg, err := initConfig("health", args)
	if err != nil {
		return fail(err)
	}

	printHeader("SYSTEM HEALTH CHECK")
	snap, services := collectHealth(cfg)
	printSnapshot(snap, services)

	r := report.Assemble(cfg.ReportName, snap, services, nil)
	if err := exportReport(cfg, r); err != nil {
		return fail(err)
	}
	return ExitOK
}
