package bench

import (
	"fmt"

	"github.com/CathyLuo/uarch-bench/isa"
	"github.com/CathyLuo/uarch-bench/timer"
)

// PrintName writes the description column for one result line.
func PrintName(c *Context, name string) {
	fmt.Fprintf(c.Out, "%*s", DescWidth, name)
}

// PrintHeader writes the column header: the description column followed by
// one column per metric the platform timer produces.
func PrintHeader(c *Context) {
	fmt.Fprintf(c.Out, "%*s", DescWidth, "Benchmark")
	for _, name := range timer.MetricNames() {
		fmt.Fprintf(c.Out, "%*s", metricWidth, name)
	}
	fmt.Fprintln(c.Out)
}

// PrintResultLine writes one benchmark's description and its metric values,
// column-aligned, using the context's precision.
func PrintResultLine(c *Context, b Benchmark, result TimingResult) {
	PrintName(c, b.Args().Desc)
	for _, m := range result.Metrics() {
		fmt.Fprintf(c.Out, "%*.*f", metricWidth, c.Precision, m.Value)
	}
	fmt.Fprintln(c.Out)
}

// RunAndPrint gates b on hardware capability, then either prints a skip
// notice naming the missing features or runs the measurement and prints the
// result line. Skipping is a normal outcome, not an error.
func RunAndPrint(c *Context, b Benchmark) {
	args := b.Args()
	if missing := c.missingFeatures(args.Features); len(missing) > 0 {
		PrintName(c, args.Desc)
		fmt.Fprintf(c.Out, " Skipped because hardware doesn't support required features: %s\n",
			featureList(missing))
		return
	}
	PrintResultLine(c, b, b.Measure(c))
}

// Time measures f, which must perform ops operations of the measured
// kernel, and returns one metric per timer column.
func Time(ops int, f func()) TimingResult {
	names := timer.MetricNames()
	values := timer.Measure(ops, f)
	var result TimingResult
	for i, name := range names {
		result.Add(name, values[i])
	}
	return result
}

func featureList(features []isa.Feature) string {
	s := "["
	for i, f := range features {
		if i > 0 {
			s += ", "
		}
		s += f.String()
	}
	return s + "]"
}
