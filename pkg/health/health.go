// Package health samples host-level resource usage. Every metric is
// best-effort: what cannot be read on the current platform stays
// invalid and renders as a placeholder at the export boundary.
package health

import "time"

// Value is an optional metric. Invalid values were unavailable on
// this platform or failed to read.
type Value struct {
	Val   float64
	Valid bool
}

// Some wraps a known value.
func Some(v float64) Value {
	return Value{Val: v, Valid: true}
}

// Disk describes usage of one mounted filesystem.
type Disk struct {
	Mount       string
	TotalBytes  Value
	UsedBytes   Value
	FreeBytes   Value
	UsedPercent Value
}

// Memory describes physical memory usage.
type Memory struct {
	TotalBytes     Value
	UsedBytes      Value
	AvailableBytes Value
	UsedPercent    Value
}

// CPU describes processor shape and current load.
type CPU struct {
	LogicalCores Value
	LoadPercent  Value
}

// Snapshot is one immutable health sample.
type Snapshot struct {
	Timestamp time.Time
	Hostname  string
	OS        string
	OSVersion string
	Disks     []Disk
	Memory    Memory
	CPU       CPU
}
