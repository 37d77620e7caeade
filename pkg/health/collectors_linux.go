//go:build linux

package health

import (
	"time"

	"golang.org/x/sys/unix"

	"supportkit/pkg/probing"
)

type cpuCollector struct {
	sampleInterval time.Duration
}

func newCPUCollector(interval time.Duration) Collector {
	return &cpuCollector{sampleInterval: interval}
}

func (c *cpuCollector) Name() string { return "cpu" }

func (c *cpuCollector) Collect(s *Snapshot) {
	if cores := logicalCores(); cores > 0 {
		s.CPU.LogicalCores = Some(float64(cores))
	}
	s.CPU.LoadPercent = c.loadPercent()
}

// loadPercent samples /proc/stat twice; if that fails it falls back
// to the one-minute load average scaled by core count.
func (c *cpuCollector) loadPercent() Value {
	if c.sampleInterval > 0 {
		if first, ok := readCPUTimes(); ok {
			time.Sleep(c.sampleInterval)
			if second, ok := readCPUTimes(); ok {
				if v := cpuPercentBetween(first, second); v.Valid {
					return v
				}
			}
		}
	}

	content, err := probing.File("/proc/loadavg")
	if err != nil {
		return Value{}
	}
	load := parseLoadAvg(content)
	cores := logicalCores()
	if !load.Valid || cores <= 0 {
		return Value{}
	}
	pct := load.Val / float64(cores) * 100
	if pct > 100 {
		pct = 100
	}
	return Some(pct)
}

func readCPUTimes() (cpuTimes, bool) {
	content, err := probing.File("/proc/stat")
	if err != nil {
		return cpuTimes{}, false
	}
	return parseCPUTimes(content)
}

type memoryCollector struct{}

func newMemoryCollector() Collector { return &memoryCollector{} }

func (c *memoryCollector) Name() string { return "memory" }

func (c *memoryCollector) Collect(s *Snapshot) {
	kv, err := probing.FileKV("/proc/meminfo", ":")
	if err != nil {
		return
	}
	s.Memory = parseMeminfo(kv)
}

type diskCollector struct{}

func newDiskCollector() Collector { return &diskCollector{} }

func (c *diskCollector) Name() string { return "disk" }

func (c *diskCollector) Collect(s *Snapshot) {
	content, err := probing.File("/proc/self/mounts")
	if err != nil {
		return
	}

	for _, e := range parseMounts(content) {
		var st unix.Statfs_t
		if err := unix.Statfs(e.mount, &st); err != nil {
			continue
		}

		bsize := uint64(st.Bsize)
		total := st.Blocks * bsize
		free := st.Bfree * bsize
		avail := st.Bavail * bsize
		if total == 0 {
			continue
		}
		used := total - free

		d := Disk{
			Mount:      e.mount,
			TotalBytes: Some(float64(total)),
			UsedBytes:  Some(float64(used)),
			FreeBytes:  Some(float64(avail)),
		}
		if used+avail > 0 {
			d.UsedPercent = Some(float64(used) / float64(used+avail) * 100)
		}
		s.Disks = append(s.Disks, d)
	}
}

func osVersion() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(uname.Release[:])
}
