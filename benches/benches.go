// Package benches declares the concrete benchmarks the tool ships with.
// All of them run single-threaded; the memory substrate they lean on is not
// thread-safe and parallel measurement would be meaningless anyway.
package benches

import (
	"github.com/CathyLuo/uarch-bench/bench"
	"github.com/CathyLuo/uarch-bench/isa"
	"github.com/CathyLuo/uarch-bench/match"
)

// fnBench pairs a descriptor with its measurement function.
type fnBench struct {
	bench.Base
	measure func(c *bench.Context) bench.TimingResult
}

func (b *fnBench) Measure(c *bench.Context) bench.TimingResult {
	return b.measure(c)
}

func newBench(id, desc string, features []isa.Feature,
	measure func(c *bench.Context) bench.TimingResult) bench.Benchmark {
	return &fnBench{
		Base:    bench.NewBase(bench.BenchArgs{ID: id, Desc: desc, Features: features}),
		measure: measure,
	}
}

// All returns every benchmark in declaration order: memory first, then CPU.
func All() []bench.Benchmark {
	var all []bench.Benchmark
	all = append(all, memoryBenches()...)
	all = append(all, cpuBenches()...)
	return all
}

// Select filters benchmarks whose ID matches pattern. An empty pattern
// selects everything.
func Select(all []bench.Benchmark, pattern string, m match.Matcher) ([]bench.Benchmark, error) {
	if pattern == "" {
		return all, nil
	}
	var selected []bench.Benchmark
	for _, b := range all {
		ok, err := m.Matches(b.Args().ID, pattern)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, b)
		}
	}
	return selected, nil
}
