//go:build !amd64

package timer

import "time"

// Fallback for platforms without a usable cycle counter. Wall time is the
// only metric; callers learn that from MetricNames.

func metricNames() []string {
	return []string{"Nanos"}
}

func measure(ops int, f func()) []float64 {
	t0 := time.Now()
	f()
	elapsed := time.Since(t0)
	return []float64{float64(elapsed.Nanoseconds()) / float64(ops)}
}

func timerName() string {
	return "time.Now"
}
