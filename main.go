package main

import (
	"fmt"
	"os"

	"supportkit/pkg/cmd"
)

func main() {
	// Panics anywhere in a pipeline surface as exit code 3; expected
	// input problems exit 2 from the commands themselves.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ERROR: unexpected failure: %v\n", r)
			os.Exit(cmd.ExitUnexpected)
		}
	}()

	if len(os.Args) < 2 {
		os.Exit(cmd.Menu())
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		os.Exit(cmd.Run(args))
	case "health":
		os.Exit(cmd.Health(args))
	case "parse-log":
		os.Exit(cmd.ParseLog(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`supportkit - Host health checks, log triage, and report export

Usage:
  supportkit <command> [flags]
  supportkit              (no command: interactive menu)

Commands:
  run           Full workflow: health check + log scan + export
  health        Check system health (disk/RAM/CPU) and services
  parse-log     Scan a log file for keyword matches
  help          Show this help

Flags:
  --log string          Path to log file (run, parse-log)
  --keywords string     Comma-separated keywords (default: error)
  --services string     Comma-separated service names to check
  --out string          Output directory (default: ./reports)
  --export string       Export format: xlsx or csv (default: xlsx)
  --case-sensitive      Case-sensitive keyword matching
  --sample-limit int    Max matching lines kept as samples (default: 50)
  --graphs              Also render an HTML chart page
  --graph-dir string    Chart output directory
  --config string       Optional YAML config file

Examples:
  # Full workflow against syslog, spreadsheet output
  supportkit run --log /var/log/syslog --services sshd,cron

  # Health only, CSV files
  supportkit health --export csv --out ./reports

  # Log scan with custom keywords
  supportkit parse-log --log app.log --keywords error,timeout,fatal
`)
}
