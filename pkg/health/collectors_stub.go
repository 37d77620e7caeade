//go:build !linux && !windows

package health

import "time"

// Platforms without a probing implementation still report hostname,
// OS, and core count; everything else exports as a placeholder.

type stubCollector struct {
	name string
}

func (c *stubCollector) Name() string { return c.name }

func (c *stubCollector) Collect(s *Snapshot) {
	if c.name == "cpu" {
		if cores := logicalCores(); cores > 0 {
			s.CPU.LogicalCores = Some(float64(cores))
		}
	}
}

func newCPUCollector(time.Duration) Collector { return &stubCollector{name: "cpu"} }
func newMemoryCollector() Collector           { return &stubCollector{name: "memory"} }
func newDiskCollector() Collector             { return &stubCollector{name: "disk"} }

func osVersion() string { return "unknown" }
