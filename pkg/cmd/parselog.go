package cmd

import "supportkit/pkg/report"

// ParseLog runs a log scan only. A missing or unreadable log is
// fatal and nothing is written.
func ParseLog(args []string) int {
	cfg, err := initConfig("parse-log", args)
	if err != nil {
		return fail(err)
	}
	if err := validateLog(cfg.LogPath); err != nil {
		return fail(err)
	}

	printHeader("LOG PARSER")
	finding, err := scanLog(cfg)
	if err != nil {
		return fail(err)
	}
	printFinding(finding)

	r := report.Assemble(cfg.ReportName, nil, nil, finding)
	if err := exportReport(cfg, r); err != nil {
		return fail(err)
	}
	return ExitOK
}
