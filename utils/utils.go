package utils

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// LogMessage handles both console output and file logging
func LogMessage(message string, debug bool) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("%s | %s", timestamp, message)

	f, err := os.OpenFile("ubench.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ubench.log: %v\n", err)
		return
	}
	defer f.Close()

	logger := log.New(f, "", 0)
	logger.Println(logEntry)

	// Output to console for critical messages (debug == false) or when debug is enabled
	if !debug {
		fmt.Println(logEntry)
	}
}

// Fatalf reports an unrecoverable condition and terminates the process.
// The tool cannot produce valid timing data after any condition routed
// here, so there is no recovery path.
func Fatalf(format string, args ...interface{}) {
	LogMessage(fmt.Sprintf("FATAL: "+format, args...), false)
	os.Exit(1)
}

// Check is an assertion-style guard: a false condition is fatal.
func Check(cond bool, format string, args ...interface{}) {
	if !cond {
		Fatalf(format, args...)
	}
}

// FormatSize converts bytes to human-readable string (KB, MB, GB)
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if size >= GB {
		return fmt.Sprintf("%.2fGB", float64(size)/float64(GB))
	}
	if size >= MB {
		return fmt.Sprintf("%.2fMB", float64(size)/float64(MB))
	}
	if size >= KB {
		return fmt.Sprintf("%.2fKB", float64(size)/float64(KB))
	}

	return fmt.Sprintf("%dB", size)
}

// ParseSize parses size string with units (e.g., 4K, 64K, 1G)
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	var multiplier int64 = 1

	if strings.HasSuffix(sizeStr, "KB") {
		multiplier = 1024
		sizeStr = sizeStr[:len(sizeStr)-2]
	} else if strings.HasSuffix(sizeStr, "K") {
		multiplier = 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	} else if strings.HasSuffix(sizeStr, "MB") {
		multiplier = 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-2]
	} else if strings.HasSuffix(sizeStr, "M") {
		multiplier = 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	} else if strings.HasSuffix(sizeStr, "GB") {
		multiplier = 1024 * 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-2]
	} else if strings.HasSuffix(sizeStr, "G") {
		multiplier = 1024 * 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	}

	size, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil {
		return 0, err
	}

	return size * multiplier, nil
}

// NewRand creates a new random number generator with the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ErrnoToStr maps an OS error code to a human-readable string for
// diagnostic output.
func ErrnoToStr(e int) string {
	errno := syscall.Errno(e)
	if name := unix.ErrnoName(errno); name != "" {
		return fmt.Sprintf("%s (%s)", errno.Error(), name)
	}
	return errno.Error()
}

// CacheInfo stores the sizes of L1, L2, and L3 caches plus the line size
type CacheInfo struct {
	L1Size   int64 // in bytes
	L2Size   int64 // in bytes
	L3Size   int64 // in bytes
	LineSize int64 // in bytes
}

// GetCacheInfo retrieves cache sizes and the cache line size from sysfs
func GetCacheInfo() (CacheInfo, error) {
	cacheInfo := CacheInfo{}
	cacheDir := "/sys/devices/system/cpu/cpu0/cache"

	for i := 0; i <= 3; i++ {
		levelPath := filepath.Join(cacheDir, fmt.Sprintf("index%d/level", i))
		sizePath := filepath.Join(cacheDir, fmt.Sprintf("index%d/size", i))
		typePath := filepath.Join(cacheDir, fmt.Sprintf("index%d/type", i))
		linePath := filepath.Join(cacheDir, fmt.Sprintf("index%d/coherency_line_size", i))

		levelData, err := os.ReadFile(levelPath)
		if err != nil {
			continue
		}
		level, err := strconv.Atoi(strings.TrimSpace(string(levelData)))
		if err != nil {
			continue
		}

		typeData, err := os.ReadFile(typePath)
		if err != nil {
			continue
		}
		cacheType := strings.TrimSpace(string(typeData))
		if cacheType != "Data" && cacheType != "Unified" {
			continue
		}

		if lineData, err := os.ReadFile(linePath); err == nil {
			if line, err := strconv.ParseInt(strings.TrimSpace(string(lineData)), 10, 64); err == nil && line > 0 {
				cacheInfo.LineSize = line
			}
		}

		sizeData, err := os.ReadFile(sizePath)
		if err != nil {
			continue
		}
		sizeStr := strings.TrimSpace(string(sizeData))
		size, err := ParseCacheSize(sizeStr)
		if err != nil {
			continue
		}

		switch level {
		case 1:
			cacheInfo.L1Size = size
		case 2:
			cacheInfo.L2Size = size
		case 3:
			cacheInfo.L3Size = size
		}
	}

	if cacheInfo.L1Size == 0 {
		cacheInfo.L1Size = 32 * 1024
	}
	if cacheInfo.L2Size == 0 {
		cacheInfo.L2Size = 256 * 1024
	}
	if cacheInfo.LineSize == 0 {
		cacheInfo.LineSize = 64
	}

	return cacheInfo, nil
}

// ParseCacheSize converts cache size string (e.g., "32K", "4M") to bytes
func ParseCacheSize(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)
	if len(sizeStr) == 0 {
		return 0, fmt.Errorf("empty cache size string")
	}

	unit := sizeStr[len(sizeStr)-1:]
	valueStr := sizeStr[:len(sizeStr)-1]
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cache size value: %v", err)
	}

	switch strings.ToUpper(unit) {
	case "K":
		return value * 1024, nil
	case "M":
		return value * 1024 * 1024, nil
	case "G":
		return value * 1024 * 1024 * 1024, nil
	default:
		return 0, fmt.Errorf("unknown cache size unit: %s", unit)
	}
}

// NUMAInfo holds information about NUMA nodes
type NUMAInfo struct {
	NumNodes int
	NodeCPUs [][]int
}

// GetNUMAInfo retrieves NUMA node information (Linux-specific)
func GetNUMAInfo() (NUMAInfo, error) {
	info := NUMAInfo{
		NumNodes: 1,
		NodeCPUs: make([][]int, 0),
	}

	nodeDir := "/sys/devices/system/node"
	if _, err := os.Stat(nodeDir); os.IsNotExist(err) {
		cpus := make([]int, runtime.NumCPU())
		for i := 0; i < runtime.NumCPU(); i++ {
			cpus[i] = i
		}
		info.NodeCPUs = append(info.NodeCPUs, cpus)
		return info, nil
	}

	files, err := os.ReadDir(nodeDir)
	if err != nil {
		return info, err
	}

	for _, file := range files {
		if !file.IsDir() || !strings.HasPrefix(file.Name(), "node") {
			continue
		}

		nodeID, err := strconv.Atoi(strings.TrimPrefix(file.Name(), "node"))
		if err != nil {
			continue
		}

		if nodeID >= len(info.NodeCPUs) {
			newSize := nodeID + 1
			oldSize := len(info.NodeCPUs)
			info.NodeCPUs = append(info.NodeCPUs, make([][]int, newSize-oldSize)...)
		}

		cpuList, err := os.ReadFile(filepath.Join(nodeDir, file.Name(), "cpulist"))
		if err != nil {
			continue
		}

		cpus := make([]int, 0)
		for _, segment := range strings.Split(strings.TrimSpace(string(cpuList)), ",") {
			if strings.Contains(segment, "-") {
				parts := strings.Split(segment, "-")
				if len(parts) != 2 {
					continue
				}
				start, err := strconv.Atoi(parts[0])
				if err != nil {
					continue
				}
				end, err := strconv.Atoi(parts[1])
				if err != nil {
					continue
				}
				for i := start; i <= end; i++ {
					cpus = append(cpus, i)
				}
			} else {
				cpu, err := strconv.Atoi(segment)
				if err != nil {
					continue
				}
				cpus = append(cpus, cpu)
			}
		}

		info.NodeCPUs[nodeID] = cpus
	}

	info.NumNodes = 0
	for i := range info.NodeCPUs {
		if len(info.NodeCPUs[i]) > 0 {
			info.NumNodes = i + 1
		}
	}

	return info, nil
}
