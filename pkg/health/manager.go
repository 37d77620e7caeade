package health

import (
	"log"
	"os"
	"runtime"
	"time"
)

// Collector fills a portion of a Snapshot. Implementations must not
// fail the run: anything unreadable is left invalid.
type Collector interface {
	Name() string
	Collect(s *Snapshot)
}

// Manager owns the set of platform collectors for one run.
type Manager struct {
	collectors []Collector
}

// Options configures collection.
type Options struct {
	// CPUSampleInterval is the window between the two CPU time reads
	// used to derive utilization. Zero means load-average only.
	CPUSampleInterval time.Duration
}

// NewManager builds the collectors available on this platform.
func NewManager(opts Options) *Manager {
	m := &Manager{
		collectors: []Collector{
			newCPUCollector(opts.CPUSampleInterval),
			newMemoryCollector(),
			newDiskCollector(),
		},
	}
	log.Printf("Initialized %d health collectors", len(m.collectors))
	return m
}

// Collect takes one snapshot. It never returns an error; individual
// metrics degrade to invalid values instead.
func (m *Manager) Collect() *Snapshot {
	s := &Snapshot{
		Timestamp: time.Now(),
		Hostname:  hostname(),
		OS:        runtime.GOOS,
		OSVersion: osVersion(),
	}
	for _, c := range m.collectors {
		c.Collect(s)
	}
	return s
}

// CollectorNames reports the active collectors, mostly for logging.
func (m *Manager) CollectorNames() []string {
	names := make([]string, len(m.collectors))
	for i, c := range m.collectors {
		names[i] = c.Name()
	}
	return names
}

func hostname() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "unknown-host"
}

func logicalCores() int {
	return runtime.NumCPU()
}
