// Package bench is the execution skeleton: benchmark descriptors, timing
// results, feature gating, and aligned text output.
package bench

import (
	"io"

	"github.com/CathyLuo/uarch-bench/isa"
)

// DescWidth is the fixed width of the description column.
const DescWidth = 40

// metricWidth is the width of each metric column.
const metricWidth = 12

// BenchArgs is the immutable descriptor of one benchmark instance.
type BenchArgs struct {
	ID       string
	Desc     string
	Features []isa.Feature
}

// Metric is one named measured value.
type Metric struct {
	Name  string
	Value float64
}

// TimingResult is the ordered list of metrics one benchmark run produced.
type TimingResult struct {
	metrics []Metric
}

// Add appends a metric, preserving insertion order.
func (r *TimingResult) Add(name string, value float64) {
	r.metrics = append(r.metrics, Metric{Name: name, Value: value})
}

// Metrics returns the metrics in the order they were added.
func (r *TimingResult) Metrics() []Metric {
	return r.metrics
}

// Benchmark is a runnable measurement owning its descriptor. Variants
// differ in what they measure and how they lay out memory for it.
type Benchmark interface {
	Args() BenchArgs
	Measure(c *Context) TimingResult
}

// Base supplies the descriptor half of Benchmark for embedding.
type Base struct {
	args BenchArgs
}

// NewBase wraps args for embedding into a concrete benchmark.
func NewBase(args BenchArgs) Base {
	return Base{args: args}
}

// Args returns the benchmark's descriptor.
func (b Base) Args() BenchArgs {
	return b.args
}

// Context carries the shared output sink and formatting configuration for
// one run of the tool.
type Context struct {
	Out       io.Writer
	Precision int
	Debug     bool

	// FeatureCheck returns the required features the host lacks; nil means
	// the real host predicate. Tests inject their own.
	FeatureCheck func([]isa.Feature) []isa.Feature
}

func (c *Context) missingFeatures(features []isa.Feature) []isa.Feature {
	if c.FeatureCheck != nil {
		return c.FeatureCheck(features)
	}
	return isa.Missing(features)
}
