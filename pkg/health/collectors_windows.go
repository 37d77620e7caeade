//go:build windows

package health

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

type cpuCollector struct{}

func newCPUCollector(time.Duration) Collector { return &cpuCollector{} }

func (c *cpuCollector) Name() string { return "cpu" }

func (c *cpuCollector) Collect(s *Snapshot) {
	if cores := logicalCores(); cores > 0 {
		s.CPU.LogicalCores = Some(float64(cores))
	}
	// No cheap utilization counter here; the metric stays invalid
	// and exports as a placeholder.
}

type memoryCollector struct{}

func newMemoryCollector() Collector { return &memoryCollector{} }

func (c *memoryCollector) Name() string { return "memory" }

type memoryStatusEx struct {
	Length               uint32
	MemoryLoad           uint32
	TotalPhys            uint64
	AvailPhys            uint64
	TotalPageFile        uint64
	AvailPageFile        uint64
	TotalVirtual         uint64
	AvailVirtual         uint64
	AvailExtendedVirtual uint64
}

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGlobalMemoryStatusEx = kernel32.NewProc("GlobalMemoryStatusEx")
)

func (c *memoryCollector) Collect(s *Snapshot) {
	var st memoryStatusEx
	st.Length = uint32(unsafe.Sizeof(st))
	r, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&st)))
	if r == 0 || st.TotalPhys == 0 {
		return
	}

	used := st.TotalPhys - st.AvailPhys
	s.Memory = Memory{
		TotalBytes:     Some(float64(st.TotalPhys)),
		UsedBytes:      Some(float64(used)),
		AvailableBytes: Some(float64(st.AvailPhys)),
		UsedPercent:    Some(float64(used) / float64(st.TotalPhys) * 100),
	}
}

type diskCollector struct{}

func newDiskCollector() Collector { return &diskCollector{} }

func (c *diskCollector) Name() string { return "disk" }

func (c *diskCollector) Collect(s *Snapshot) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return
	}

	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		root := string(rune('A'+i)) + `:\`

		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		if windows.GetDriveType(rootPtr) != windows.DRIVE_FIXED {
			continue
		}

		var free, total, totalFree uint64
		if err := windows.GetDiskFreeSpaceEx(rootPtr, &free, &total, &totalFree); err != nil {
			continue
		}
		if total == 0 {
			continue
		}
		used := total - totalFree

		s.Disks = append(s.Disks, Disk{
			Mount:       root,
			TotalBytes:  Some(float64(total)),
			UsedBytes:   Some(float64(used)),
			FreeBytes:   Some(float64(free)),
			UsedPercent: Some(float64(used) / float64(total) * 100),
		})
	}
}

func osVersion() string {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}
