package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAlignedAndTouched(t *testing.T) {
	const size = 1 << 20
	buf := Alloc(size)
	require.Len(t, buf, size)
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%TwoMB, "base not 2MB aligned")

	// Every byte was written during allocation and must read back as zero.
	for i := range buf {
		if buf[i] != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, buf[i])
		}
	}

	// The span is real, writable memory: a unique pattern survives a round trip.
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("byte %d lost pattern: got %d", i, buf[i])
		}
	}
}

func TestAlignedBufAlignment(t *testing.T) {
	for align := 1; align <= TwoMB; align *= 2 {
		buf := AlignedBuf(align, 4096)
		require.Len(t, buf, 4096, "align=%d", align)
		assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%uintptr(align), "align=%d", align)
	}
}

func TestAlignedBufReusesPool(t *testing.T) {
	a := AlignedBuf(64, 128)
	b := AlignedBuf(64, 128)
	assert.Same(t, &a[0], &b[0], "pool must be shared across requests")
}

func TestMisalignedBuf(t *testing.T) {
	buf := MisalignedBuf(4096, 1024, 36)
	require.Len(t, buf, 1024)
	assert.EqualValues(t, 36, uintptr(unsafe.Pointer(&buf[0]))%4096)
}

func successor(r *Region, slot uint64) uint64 {
	return *(*uint64)(unsafe.Pointer(&r.Data[slot*LineSize]))
}

func assertSingleCycle(t *testing.T, r *Region) {
	t.Helper()
	lines := r.NumLines()
	seen := make(map[uint64]bool, lines)
	idx := r.start
	for {
		require.Less(t, idx, uint64(lines), "successor index out of range")
		require.False(t, seen[idx], "slot %d visited twice before closing the cycle", idx)
		seen[idx] = true
		idx = successor(r, idx)
		if idx == r.start {
			break
		}
	}
	assert.Equal(t, lines, len(seen), "cycle does not cover every slot")
}

func TestShuffledRegionSingleCycle(t *testing.T) {
	for _, size := range []int{LineSize, 4 * LineSize, 64 * 1024, 1 << 20} {
		r := ShuffledRegion(size, 0)
		require.Equal(t, size, r.Size)
		assertSingleCycle(t, r)
	}
}

func TestShuffledRegionWithOffset(t *testing.T) {
	r := ShuffledRegion(64*1024, 24)
	assertSingleCycle(t, r)
	assert.Same(t, &shuffledStorage[24], &r.Data[0])
}

func TestShuffledRegionDeterministic(t *testing.T) {
	snapshot := func(r *Region) []uint64 {
		succ := make([]uint64, r.NumLines())
		for i := range succ {
			succ[i] = successor(r, uint64(i))
		}
		return succ
	}

	r1 := ShuffledRegion(64*1024, 0)
	first := snapshot(r1)
	start1 := r1.start

	r2 := ShuffledRegion(64*1024, 0)
	assert.Equal(t, first, snapshot(r2), "same (size, offset) must produce the same layout")
	assert.Equal(t, start1, r2.start)
}

func TestChaseFullLapReturnsToStart(t *testing.T) {
	r := ShuffledRegion(16*1024, 0)
	assert.Equal(t, r.start, r.Chase(r.NumLines()))
}
