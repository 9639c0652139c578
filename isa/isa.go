// Package isa answers whether the host CPU can run a given benchmark.
package isa

import (
	"github.com/klauspost/cpuid/v2"
)

// Feature identifies one instruction-set capability a benchmark may require.
type Feature struct {
	id   cpuid.FeatureID
	name string
}

func (f Feature) String() string {
	return f.name
}

// Features required by benchmarks in this tool.
var (
	AESNI  = Feature{cpuid.AESNI, "AESNI"}
	AVX2   = Feature{cpuid.AVX2, "AVX2"}
	POPCNT = Feature{cpuid.POPCNT, "POPCNT"}
	RDTSCP = Feature{cpuid.RDTSCP, "RDTSCP"}
	SSE2   = Feature{cpuid.SSE2, "SSE2"}
)

// Supports reports whether the host satisfies every feature in the set.
func Supports(features []Feature) bool {
	for _, f := range features {
		if !cpuid.CPU.Has(f.id) {
			return false
		}
	}
	return true
}

// Missing returns the subset of features the host does not support, in the
// order given. Used to word skip notices.
func Missing(features []Feature) []Feature {
	var missing []Feature
	for _, f := range features {
		if !cpuid.CPU.Has(f.id) {
			missing = append(missing, f)
		}
	}
	return missing
}

// CacheLine returns the cache line size the CPU reports, or 0 when the
// host does not expose it.
func CacheLine() int {
	return cpuid.CPU.CacheLine
}

// BrandName returns the CPU brand string for diagnostics.
func BrandName() string {
	return cpuid.CPU.BrandName
}
