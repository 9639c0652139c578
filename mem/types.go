// Package mem is the memory substrate for the latency benchmarks: a
// huge-page-backed allocator, a process-wide aligned storage pool, and a
// builder for shuffled pointer-chase regions. Everything here is allocated
// once and deliberately never released; a benchmark process is short-lived
// and reallocation would itself show up in the measurements. None of it is
// thread-safe: benchmarks run strictly one at a time.
package mem

import "unsafe"

const (
	// LineSize is the cache line size all layouts are built for.
	LineSize = 64

	// TwoMB is the transparent huge page size on x86-64 Linux.
	TwoMB = 2 << 20
)

// line mirrors one cache-line-sized slot of a shuffled region. The first
// word holds the index of the successor slot; the rest is padding.
type line struct {
	next uint64
	_    [LineSize/8 - 1]uint64
}

// Compile-time guarantee that line is exactly one cache line.
var (
	_ [LineSize - unsafe.Sizeof(line{})]byte
	_ [unsafe.Sizeof(line{}) - LineSize]byte
)

// Region describes a contiguous span carved for one benchmark. The memory
// belongs to process-lifetime storage and is never reclaimed; a Region only
// describes it.
type Region struct {
	Size int
	Data []byte

	start uint64
}

// NumLines returns how many cache-line slots the region holds.
func (r *Region) NumLines() int {
	return r.Size / LineSize
}

// Chase follows the successor chain for steps loads and returns the final
// slot index. Each load's address depends on the previous load's value, so
// the chain cannot be prefetched ahead.
func (r *Region) Chase(steps int) uint64 {
	idx := r.start
	for i := 0; i < steps; i++ {
		idx = *(*uint64)(unsafe.Pointer(&r.Data[idx*LineSize]))
	}
	return idx
}
