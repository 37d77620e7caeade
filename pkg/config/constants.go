package config

import "time"

const (
	// DefaultKeyword is used when no keywords are given to a log scan.
	DefaultKeyword = "error"

	// DefaultSampleLimit caps how many matching lines a scan keeps.
	DefaultSampleLimit = 50

	// DefaultMaxLineLength truncates pathological log lines in samples.
	DefaultMaxLineLength = 5000

	DefaultOutDir     = "./reports"
	DefaultExport     = "xlsx"
	DefaultReportName = "it_support_report"

	// DefaultCPUSampleInterval is the window between the two /proc/stat
	// reads used to derive CPU utilization.
	DefaultCPUSampleInterval = 500 * time.Millisecond
)
