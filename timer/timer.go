// Package timer produces the per-operation metrics reported for every
// benchmark. On amd64 it reads the serialized time-stamp counter around the
// measured kernel and reports both Cycles and Nanos; elsewhere only wall
// time is available and the Cycles column is omitted entirely, so headers
// and result rows always agree.
package timer

// MetricNames returns the metric columns this host produces, in print order.
func MetricNames() []string {
	return metricNames()
}

// Measure runs f, which must perform exactly ops operations of the measured
// kernel, and returns the cost of one operation for each metric in
// MetricNames order.
func Measure(ops int, f func()) []float64 {
	return measure(ops, f)
}

// Name describes the cycle source in use, for diagnostics.
func Name() string {
	return timerName()
}
