package benches

import (
	"crypto/aes"
	"math/bits"

	"github.com/CathyLuo/uarch-bench/bench"
	"github.com/CathyLuo/uarch-bench/isa"
)

var (
	intSink uint64
	aesSink byte
)

const aluIters = 1 << 24

func cpuBenches() []bench.Benchmark {
	return []bench.Benchmark{
		newBench("cpu/add-dep", "Dependent 64-bit add chain", nil, addDep),
		newBench("cpu/mul-dep", "Dependent 64-bit multiply chain", nil, mulDep),
		newBench("cpu/popcnt-dep", "Dependent popcount chain",
			[]isa.Feature{isa.POPCNT}, popcntDep),
		newBench("cpu/aes-block", "AES-128 single block encrypt",
			[]isa.Feature{isa.AESNI}, aesBlock),
	}
}

// Each kernel is a serial dependency chain, so the per-op figure is the
// instruction's latency rather than its throughput.

func addDep(c *bench.Context) bench.TimingResult {
	x := uint64(1)
	result := bench.Time(aluIters, func() {
		for i := 0; i < aluIters; i++ {
			x += uint64(i) | 1
		}
	})
	intSink = x
	return result
}

func mulDep(c *bench.Context) bench.TimingResult {
	x := uint64(3)
	result := bench.Time(aluIters, func() {
		for i := 0; i < aluIters; i++ {
			x = x*0x2545F4914F6CDD1D + 1
		}
	})
	intSink = x
	return result
}

func popcntDep(c *bench.Context) bench.TimingResult {
	x := uint64(0xDEADBEEFCAFEBABE)
	result := bench.Time(aluIters, func() {
		for i := 0; i < aluIters; i++ {
			x = uint64(bits.OnesCount64(x)) + x<<1
		}
	})
	intSink = x
	return result
}

// aesBlock measures one hardware-assisted block encrypt. Gated on AESNI so
// the number always reflects the instruction, never a software fallback.
func aesBlock(c *bench.Context) bench.TimingResult {
	key := []byte("0123456789abcdef")
	block, err := aes.NewCipher(key)
	if err != nil {
		// 16-byte key; cannot fail.
		panic(err)
	}
	src := make([]byte, aes.BlockSize)
	dst := make([]byte, aes.BlockSize)
	const iters = 1 << 20
	result := bench.Time(iters, func() {
		for i := 0; i < iters; i++ {
			block.Encrypt(dst, src)
			src, dst = dst, src
		}
	})
	aesSink = dst[0]
	return result
}
