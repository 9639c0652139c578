//go:build amd64

package timer

import (
	"time"

	"github.com/dterei/gotsc"
)

// Measured once at startup and subtracted from every sample.
var tscOverhead = gotsc.TSCOverhead()

func metricNames() []string {
	return []string{"Cycles", "Nanos"}
}

func measure(ops int, f func()) []float64 {
	start := gotsc.BenchStart()
	t0 := time.Now()
	f()
	elapsed := time.Since(t0)
	end := gotsc.BenchEnd()

	cycles := end - start
	if cycles > tscOverhead {
		cycles -= tscOverhead
	}
	perOp := 1.0 / float64(ops)
	return []float64{
		float64(cycles) * perOp,
		float64(elapsed.Nanoseconds()) * perOp,
	}
}

func timerName() string {
	return "rdtsc"
}
