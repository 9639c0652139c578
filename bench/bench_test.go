package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CathyLuo/uarch-bench/isa"
	"github.com/CathyLuo/uarch-bench/timer"
)

type fakeBench struct {
	Base
	ran bool
}

func (b *fakeBench) Measure(c *Context) TimingResult {
	b.ran = true
	var r TimingResult
	for _, name := range timer.MetricNames() {
		r.Add(name, 1.5)
	}
	return r
}

func newFake(desc string, features ...isa.Feature) *fakeBench {
	return &fakeBench{
		Base: NewBase(BenchArgs{ID: "fake/" + desc, Desc: desc, Features: features}),
	}
}

func TestRunAndPrintSkipsUnsupported(t *testing.T) {
	var out bytes.Buffer
	c := &Context{
		Out:       &out,
		Precision: 2,
		// Pretend the host lacks everything.
		FeatureCheck: func(fs []isa.Feature) []isa.Feature { return fs },
	}
	b := newFake("Fake gated benchmark", isa.AVX2, isa.POPCNT)

	RunAndPrint(c, b)

	assert.False(t, b.ran, "measurement must not run when features are missing")
	assert.Contains(t, out.String(), "Fake gated benchmark")
	assert.Contains(t, out.String(),
		"Skipped because hardware doesn't support required features: [AVX2, POPCNT]")
}

func TestRunAndPrintExecutesSupported(t *testing.T) {
	var out bytes.Buffer
	c := &Context{
		Out:          &out,
		Precision:    2,
		FeatureCheck: func(fs []isa.Feature) []isa.Feature { return nil },
	}
	b := newFake("Fake benchmark")

	RunAndPrint(c, b)

	assert.True(t, b.ran)
	line := out.String()
	assert.Contains(t, line, "Fake benchmark")
	assert.Contains(t, line, "1.50")
	assert.NotContains(t, line, "Skipped")
}

func TestPrintResultLineFormatting(t *testing.T) {
	var r TimingResult
	r.Add("Cycles", 3.14159)
	r.Add("Nanos", 2.0)

	var out bytes.Buffer
	c := &Context{Out: &out, Precision: 3}
	PrintResultLine(c, newFake("Short"), r)

	line := strings.TrimRight(out.String(), "\n")
	require.Greater(t, len(line), DescWidth)
	assert.Equal(t, "Short", strings.TrimSpace(line[:DescWidth]), "description column is fixed width")
	assert.Contains(t, line, "3.142")
	assert.Contains(t, line, "2.000")
}

func TestPrintHeader(t *testing.T) {
	var out bytes.Buffer
	c := &Context{Out: &out, Precision: 2}
	PrintHeader(c)

	header := strings.TrimRight(out.String(), "\n")
	assert.Equal(t, "Benchmark", strings.TrimSpace(header[:DescWidth]))
	for _, name := range timer.MetricNames() {
		assert.Contains(t, header, name)
	}
}

func TestTimeProducesOneValuePerMetric(t *testing.T) {
	n := 0
	result := Time(100, func() {
		for i := 0; i < 100; i++ {
			n++
		}
	})
	require.Equal(t, 100, n)
	metrics := result.Metrics()
	require.Len(t, metrics, len(timer.MetricNames()))
	for i, name := range timer.MetricNames() {
		assert.Equal(t, name, metrics[i].Name)
		assert.GreaterOrEqual(t, metrics[i].Value, 0.0)
	}
}
