package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Menu is the interactive mode used when no subcommand is given. It
// collects the same inputs the flags would and runs the chosen
// workflow.
func Menu() int {
	in := bufio.NewScanner(os.Stdin)

	for {
		printHeader("IT SUPPORT TOOLKIT")
		fmt.Println("Select mode:")
		fmt.Println("  1) Check system health (disk/RAM/CPU + services)")
		fmt.Println("  2) Parse log file (keyword filter)")
		fmt.Println("  3) Full workflow (health + log + export)")
		fmt.Println("  4) Exit")

		choice := prompt(in, "Enter choice (1-4): ", "")
		if choice == "4" || choice == "" {
			fmt.Println("Bye.")
			return ExitOK
		}
		if choice != "1" && choice != "2" && choice != "3" {
			fmt.Println("Invalid choice. Enter 1-4.")
			continue
		}

		export := prompt(in, "Export format (xlsx/csv) [xlsx]: ", "xlsx")
		out := prompt(in, "Output folder [./reports]: ", "./reports")
		args := []string{"--export", export, "--out", out}

		switch choice {
		case "1":
			if svcs := prompt(in, "Service names (comma-separated) [skip]: ", ""); svcs != "" {
				args = append(args, "--services", svcs)
			}
			return Health(args)
		case "2", "3":
			logPath := prompt(in, "Path to log file: ", "")
			kws := prompt(in, "Keywords (comma-separated) [error]: ", "")
			args = append(args, "--log", logPath)
			if kws != "" {
				args = append(args, "--keywords", kws)
			}
			if strings.EqualFold(prompt(in, "Case-sensitive? (y/N): ", "n"), "y") {
				args = append(args, "--case-sensitive")
			}
			if choice == "2" {
				return ParseLog(args)
			}
			if svcs := prompt(in, "Service names (comma-separated) [skip]: ", ""); svcs != "" {
				args = append(args, "--services", svcs)
			}
			return Run(args)
		}
	}
}

func prompt(in *bufio.Scanner, label, def string) string {
	fmt.Print(label)
	if !in.Scan() {
		return def
	}
	v := strings.TrimSpace(in.Text())
	if v == "" {
		return def
	}
	return v
}
