package mem

import (
	"unsafe"

	"github.com/CathyLuo/uarch-bench/utils"
)

// PoolSize is the capacity of the shared storage pool all aligned requests
// are served from.
const PoolSize = 100 * 1024 * 1024

// The pool is created on first request and reused for the life of the
// process, so every benchmark sees memory with the same backing instead of
// some runs getting huge pages and others not.
var pool []byte

// AlignedBuf returns a size-byte sub-span of the pool whose base address is
// aligned to align bytes. align must be a power of two no larger than 2MB,
// and size must fit the pool after alignment padding. Violations are fatal:
// handing out misaligned or truncated memory would silently invalidate
// every comparison made with it.
func AlignedBuf(align, size int) []byte {
	utils.Check(size >= 0 && size <= PoolSize,
		"region size %s exceeds pool capacity %s",
		utils.FormatSize(int64(size)), utils.FormatSize(PoolSize))
	utils.Check(align > 0 && align&(align-1) == 0, "alignment %d is not a power of two", align)
	utils.Check(align <= TwoMB, "alignment %s exceeds the 2MB cap", utils.FormatSize(int64(align)))

	if pool == nil {
		pool = Alloc(PoolSize)
	}

	base := uintptr(unsafe.Pointer(&pool[0]))
	aligned := (base + uintptr(align) - 1) &^ (uintptr(align) - 1)
	pad := int(aligned - base)
	utils.Check(PoolSize-pad >= size,
		"region of %s does not fit the pool after %d padding bytes",
		utils.FormatSize(int64(size)), pad)

	return pool[pad : pad+size : pad+size]
}

// MisalignedBuf returns a span that is first aligned to align bytes (per
// AlignedBuf) and then shifted forward by offset bytes, for benchmarks that
// deliberately measure non-ideal alignments.
func MisalignedBuf(align, size, offset int) []byte {
	utils.Check(offset >= 0, "misalignment offset must be non-negative, got %d", offset)
	buf := AlignedBuf(align, size+offset)
	return buf[offset:]
}
