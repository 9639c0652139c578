// Package cacheops exposes the hardware cache-control primitives used to
// cold-start memory benchmarks: evicting a cache line and ordering prior
// memory operations. Both are fire-and-forget hardware operations with no
// failure mode. On architectures without an implementation they degrade to
// no-ops, which only makes the first pass over a freshly built region
// warmer than intended.
package cacheops

import "unsafe"

// FlushLine evicts the cache line containing p from all cache levels.
func FlushLine(p unsafe.Pointer) {
	flushLine(p)
}

// Fence orders all prior loads and stores before any that follow.
func Fence() {
	fence()
}
