//go:build amd64

package cacheops

import "unsafe"

// Implemented in cacheops_amd64.s

//go:noescape
func flushLine(p unsafe.Pointer)

func fence()
