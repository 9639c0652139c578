package benches

import (
	"fmt"
	"unsafe"

	"github.com/CathyLuo/uarch-bench/bench"
	"github.com/CathyLuo/uarch-bench/mem"
	"github.com/CathyLuo/uarch-bench/utils"
)

// Sinks keep the measured loads observable so the kernels aren't deleted as
// dead code.
var (
	chaseSink uint64
	readSink  uint64
)

// Region sizes for the latency ladder, spanning L1 up to the full shuffled
// capacity so the ladder walks out of each cache level into DRAM.
var latencySizes = []int{
	16 * 1024,
	32 * 1024,
	64 * 1024,
	256 * 1024,
	1024 * 1024,
	4 * 1024 * 1024,
	16 * 1024 * 1024,
	64 * 1024 * 1024,
}

func memoryBenches() []bench.Benchmark {
	var out []bench.Benchmark
	for _, size := range latencySizes {
		out = append(out, newBench(
			fmt.Sprintf("memory/load-lat-%s", sizeLabel(size)),
			fmt.Sprintf("Random load latency, %s region", utils.FormatSize(int64(size))),
			nil,
			func(c *bench.Context) bench.TimingResult {
				return chase(size, 0)
			},
		))
	}

	// Same chase with the slots pushed off their natural alignment, so every
	// successor load splits across an 8-byte boundary.
	out = append(out, newBench(
		"memory/load-lat-misaligned",
		"Random load latency, misaligned region",
		nil,
		func(c *bench.Context) bench.TimingResult {
			return chase(1024*1024, 36)
		},
	))

	out = append(out,
		newBench("memory/seq-write", "Sequential write, one line per op", nil, seqWrite),
		newBench("memory/seq-read", "Sequential read, one line per op", nil, seqRead),
		newBench("memory/random-rw", "Random read-modify-write", nil, randomRW),
	)
	return out
}

// sizeLabel renders a size as a compact ID suffix like 16K or 4M.
func sizeLabel(size int) string {
	if size >= 1024*1024 {
		return fmt.Sprintf("%dM", size/(1024*1024))
	}
	return fmt.Sprintf("%dK", size/1024)
}

// chase builds (or rebuilds, same layout every time) the shuffled region
// and reports the cost of one dependent load.
func chase(size, offset int) bench.TimingResult {
	r := mem.ShuffledRegion(size, offset)
	steps := r.NumLines() * 2
	if steps < 1<<20 {
		steps = 1 << 20
	}
	var last uint64
	result := bench.Time(steps, func() {
		last = r.Chase(steps)
	})
	chaseSink = last
	return result
}

const bandwidthBytes = 32 * 1024 * 1024

// words returns the bandwidth working set as uint64s, carved aligned from
// the shared pool so every run sees identically backed memory.
func words() []uint64 {
	buf := mem.AlignedBuf(4096, bandwidthBytes)
	return unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), bandwidthBytes/8)
}

func seqWrite(c *bench.Context) bench.TimingResult {
	w := words()
	lines := bandwidthBytes / mem.LineSize
	return bench.Time(lines, func() {
		for i := range w {
			w[i] = uint64(i)
		}
	})
}

func seqRead(c *bench.Context) bench.TimingResult {
	w := words()
	lines := bandwidthBytes / mem.LineSize
	var sum uint64
	result := bench.Time(lines, func() {
		for _, v := range w {
			sum += v
		}
	})
	readSink = sum
	return result
}

// randomRW flips one bit at precomputed random indices, the same access
// stream every run.
func randomRW(c *bench.Context) bench.TimingResult {
	w := words()
	rng := utils.NewRand(456)
	indices := make([]int, 1<<20)
	for i := range indices {
		indices[i] = rng.Intn(len(w))
	}
	return bench.Time(len(indices), func() {
		for _, idx := range indices {
			w[idx] ^= 0x1
		}
	})
}
