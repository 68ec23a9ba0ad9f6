// Package sysmon samples host load for the dashboard. A scan saturates one
// core per engine, so the host figures show whether other work competes
// with it.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of host-wide CPU and memory usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64
	MemTotal   uint64
}

// Sample collects a host snapshot. CPU usage is the delta since the
// previous call, so the first sample of a process reads zero. Fields that
// cannot be read are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = clampPercent(vm.UsedPercent)
		s.MemUsed = vm.Used
		s.MemTotal = vm.Total
	}
	return s
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
