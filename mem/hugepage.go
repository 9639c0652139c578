package mem

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/CathyLuo/uarch-bench/utils"
)

// Alloc returns a size-byte span aligned to a 2MB boundary, with the kernel
// advised to back it with transparent huge pages. The advice is best-effort;
// the benchmarks run either way, just with more TLB noise.
//
// Every byte of the span is written twice (ones, then zeros) before it is
// returned. Untouched anonymous pages can all map to the shared zero page,
// which makes read-heavy benchmarks report impossibly good numbers, and a
// plain zero fill straight after allocation is exactly the pattern an
// optimizer may turn back into an untouched zeroed allocation. Allocation
// failure is fatal: there is no useful degraded mode for a timing tool.
//
// The mapping is intentionally never unmapped (see the package comment).
func Alloc(size int) []byte {
	utils.Check(size > 0, "allocation size must be positive, got %d", size)

	total := size + 2*TwoMB
	buf, err := unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		utils.Fatalf("mmap of %s failed: %v", utils.FormatSize(int64(total)), err)
	}

	base := uintptr(unsafe.Pointer(&buf[0]))
	aligned := (base + TwoMB - 1) &^ uintptr(TwoMB-1)
	pad := int(aligned - base)

	// Best-effort huge page hint over the aligned span, errors ignored like
	// any other madvise hint.
	_ = unix.Madvise(buf[pad:pad+size+TwoMB], unix.MADV_HUGEPAGE)

	region := buf[pad+TwoMB : pad+TwoMB+size : pad+TwoMB+size]
	for i := range region {
		region[i] = 1
	}
	for i := range region {
		region[i] = 0
	}
	return region
}
