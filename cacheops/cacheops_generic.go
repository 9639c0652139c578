//go:build !amd64

package cacheops

import "unsafe"

// No portable user-space cache flush exists; regions stay warm after
// construction on these platforms.
func flushLine(p unsafe.Pointer) {
	_ = p
}

func fence() {}
