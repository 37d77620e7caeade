package health

import (
	"strings"

	"supportkit/pkg/probing"
)

// parseMeminfo builds Memory from /proc/meminfo key-values. Values
// are in kB. MemAvailable is preferred for "used"; kernels without
// it fall back to free+buffers+cached.
func parseMeminfo(kv map[string]string) Memory {
	var m Memory

	get := func(key string) (int64, bool) {
		v, ok := kv[key]
		if !ok {
			return 0, false
		}
		v = strings.TrimSuffix(v, " kB")
		n, err := probing.ParseInt64(v)
		if err != nil {
			return 0, false
		}
		return n * 1024, true
	}

	total, okTotal := get("MemTotal")
	if !okTotal || total <= 0 {
		return m
	}
	m.TotalBytes = Some(float64(total))

	avail, okAvail := get("MemAvailable")
	if !okAvail {
		free, _ := get("MemFree")
		buffers, _ := get("Buffers")
		cached, _ := get("Cached")
		avail = free + buffers + cached
	}
	m.AvailableBytes = Some(float64(avail))

	used := total - avail
	if used < 0 {
		used = 0
	}
	m.UsedBytes = Some(float64(used))
	m.UsedPercent = Some(float64(used) / float64(total) * 100)
	return m
}

// cpuTimes holds the aggregate cpu line of /proc/stat in jiffies.
type cpuTimes struct {
	busy  int64
	total int64
}

// parseCPUTimes extracts the aggregate "cpu" line from /proc/stat
// content. Idle and iowait count as not-busy.
func parseCPUTimes(content string) (cpuTimes, bool) {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}

		var t cpuTimes
		for i := 1; i < len(fields); i++ {
			v, err := probing.ParseInt64(fields[i])
			if err != nil {
				return cpuTimes{}, false
			}
			t.total += v
			// fields 4 and 5 are idle and iowait
			if i != 4 && i != 5 {
				t.busy += v
			}
		}
		return t, true
	}
	return cpuTimes{}, false
}

// cpuPercentBetween derives utilization from two cpu time samples.
func cpuPercentBetween(a, b cpuTimes) Value {
	dTotal := b.total - a.total
	dBusy := b.busy - a.busy
	if dTotal <= 0 || dBusy < 0 {
		return Value{}
	}
	return Some(float64(dBusy) / float64(dTotal) * 100)
}

// parseLoadAvg returns the one-minute load average.
func parseLoadAvg(content string) Value {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return Value{}
	}
	v, err := probing.ParseFloat64(fields[0])
	if err != nil {
		return Value{}
	}
	return Some(v)
}

// mountEntry is one line of /proc/self/mounts.
type mountEntry struct {
	device string
	mount  string
	fstype string
}

// parseMounts lists real block-device mounts, first mount per device.
func parseMounts(content string) []mountEntry {
	var out []mountEntry
	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		e := mountEntry{device: fields[0], mount: fields[1], fstype: fields[2]}
		if !strings.HasPrefix(e.device, "/dev/") || seen[e.device] {
			continue
		}
		seen[e.device] = true
		out = append(out, e)
	}
	return out
}
