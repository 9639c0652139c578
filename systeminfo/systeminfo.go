package systeminfo

import (
	"fmt"
	"strings"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	ghost "github.com/shirou/gopsutil/v4/host"
	gmem "github.com/shirou/gopsutil/v4/mem"

	"github.com/CathyLuo/uarch-bench/isa"
	"github.com/CathyLuo/uarch-bench/timer"
	"github.com/CathyLuo/uarch-bench/utils"
)

// SystemInfo holds the host facts that matter when reading benchmark
// numbers: CPU identity and clocks, cache geometry, memory, NUMA layout,
// and which timer the run will use.
type SystemInfo struct {
	HostInfo   string
	CPUInfo    string
	CacheInfo  string
	MemoryInfo string
	NUMAInfo   string
	TimerInfo  string
}

// GetSystemInfo retrieves system information for the -list output.
func GetSystemInfo() SystemInfo {
	var info SystemInfo

	// Host identity
	hostInfo, err := ghost.Info()
	if err != nil {
		info.HostInfo = "Host Info: Unable to retrieve host information"
	} else {
		info.HostInfo = fmt.Sprintf("Host Info: %s, Kernel: %s, Arch: %s",
			hostInfo.Hostname, hostInfo.KernelVersion, hostInfo.KernelArch)
	}

	// CPU information
	cpuInfo, err := gcpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		info.CPUInfo = "CPU Info: Unable to retrieve CPU information"
	} else {
		totalCores, _ := gcpu.Counts(true)
		info.CPUInfo = fmt.Sprintf("CPU Info: Model: %s, Cores: %d, Frequency: %.2f MHz",
			cpuInfo[0].ModelName, totalCores, cpuInfo[0].Mhz)
	}

	// Cache geometry from sysfs, cross-checked against cpuid
	cacheInfo, err := utils.GetCacheInfo()
	if err != nil {
		info.CacheInfo = "Cache Info: Unable to retrieve cache information"
	} else {
		line := cacheInfo.LineSize
		if cl := isa.CacheLine(); cl > 0 && int64(cl) != line {
			line = int64(cl)
		}
		info.CacheInfo = fmt.Sprintf("Cache Info: L1: %s, L2: %s, L3: %s, Line: %dB",
			utils.FormatSize(cacheInfo.L1Size),
			utils.FormatSize(cacheInfo.L2Size),
			utils.FormatSize(cacheInfo.L3Size),
			line)
	}

	// Memory information
	vm, err := gmem.VirtualMemory()
	if err != nil {
		info.MemoryInfo = "Memory Info: Unable to retrieve memory information"
	} else {
		info.MemoryInfo = fmt.Sprintf("Memory Info: Total: %s, Available: %s",
			utils.FormatSize(int64(vm.Total)),
			utils.FormatSize(int64(vm.Available)))
	}

	// NUMA layout
	numaInfo, err := utils.GetNUMAInfo()
	if err != nil {
		info.NUMAInfo = "NUMA Info: Unable to retrieve NUMA information"
	} else {
		nodes := make([]string, 0, len(numaInfo.NodeCPUs))
		for id, cpus := range numaInfo.NodeCPUs {
			if len(cpus) > 0 {
				nodes = append(nodes, fmt.Sprintf("node%d: %d CPUs", id, len(cpus)))
			}
		}
		info.NUMAInfo = fmt.Sprintf("NUMA Info: %d node(s), %s",
			numaInfo.NumNodes, strings.Join(nodes, ", "))
	}

	info.TimerInfo = fmt.Sprintf("Timer Info: %s, metrics: %s",
		timer.Name(), strings.Join(timer.MetricNames(), ", "))

	return info
}

// Lines returns the summary one line per fact, in print order.
func (s SystemInfo) Lines() []string {
	return []string{
		s.HostInfo,
		s.CPUInfo,
		s.CacheInfo,
		s.MemoryInfo,
		s.NUMAInfo,
		s.TimerInfo,
	}
}
