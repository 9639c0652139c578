package mem

import (
	"unsafe"

	"github.com/CathyLuo/uarch-bench/cacheops"
	"github.com/CathyLuo/uarch-bench/utils"
)

// MaxShuffledRegionSize caps the span shuffled regions are built in.
const MaxShuffledRegionSize = 64 * 1024 * 1024

// shuffleSeed fixes the permutation. Reproducible layouts are a requirement
// here, not a nicety: results are only comparable across runs if every run
// chases the same cycle.
const shuffleSeed = 123

// One backing block for every shuffled region in the process. Whether a
// fresh block ends up on huge pages can vary run to run, so reusing a single
// block keeps that variance out of the comparisons. Never freed.
var shuffledStorage []byte

// ShuffledRegion builds a region of size bytes starting offset bytes into
// the shared backing block, where every cache-line slot stores the index of
// a successor slot and the successors form exactly one cycle covering all
// slots. Chasing it touches every line once per lap in an order the
// prefetchers cannot predict.
//
// size must be a positive multiple of LineSize and size+offset must fit the
// backing block. A non-zero offset deliberately misaligns the slots; the
// 8-byte successor loads then straddle their natural alignment, which amd64
// tolerates.
//
// The returned Region references process-lifetime storage and is never
// reclaimed.
func ShuffledRegion(size, offset int) *Region {
	utils.Check(offset >= 0, "region offset must be non-negative, got %d", offset)
	utils.Check(size+offset <= MaxShuffledRegionSize,
		"region size %s + offset %d exceeds the %s cap",
		utils.FormatSize(int64(size)), offset, utils.FormatSize(MaxShuffledRegionSize))
	utils.Check(size > 0 && size%LineSize == 0,
		"region size %d is not a positive multiple of the %d-byte cache line", size, LineSize)
	lines := size / LineSize

	if shuffledStorage == nil {
		shuffledStorage = Alloc(MaxShuffledRegionSize)
	}

	buf := shuffledStorage[offset : offset+size : offset+size]
	for i := range buf {
		buf[i] = 0xFF
	}

	perm := utils.NewRand(shuffleSeed).Perm(lines)
	for i := 0; i < lines; i++ {
		setNext(buf, uint64(perm[i]), uint64(perm[(i+1)%lines]))
	}

	// A single cycle is load-bearing: disjoint sub-cycles would shrink the
	// working set a chase actually touches.
	if got := cycleLen(buf, uint64(perm[0])); got != lines {
		utils.Fatalf("shuffled cycle covers %d of %d lines", got, lines)
	}

	// Construction walked the whole region; evict it so the benchmark that
	// runs next starts cold.
	for off := 0; off < size; off += LineSize {
		cacheops.FlushLine(unsafe.Pointer(&buf[off]))
	}
	cacheops.Fence()

	return &Region{Size: size, Data: buf, start: uint64(perm[0])}
}

func setNext(buf []byte, slot, next uint64) {
	*(*uint64)(unsafe.Pointer(&buf[slot*LineSize])) = next
}

// cycleLen follows successors from start until the walk returns to start,
// counting the slots visited.
func cycleLen(buf []byte, start uint64) int {
	p := start
	n := 0
	for {
		p = *(*uint64)(unsafe.Pointer(&buf[p*LineSize]))
		n++
		if p == start {
			return n
		}
	}
}
