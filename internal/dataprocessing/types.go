package dataprocessing

// MetricKind distinguishes integer-valued metrics (arrivals, nights) from
// floating-point ones (revenue, ADR) for output formatting.
type MetricKind int

const (
	KindInt MetricKind = iota
	KindFloat
)

// MetricSeries is one metric's per-month values within a room block, keyed by
// the raw column header the report used. Values align with the block's month
// list; Total is the block's explicit total sub-row value or, when that row
// was absent, the sum of Values.
type MetricSeries struct {
	Name   string
	Kind   MetricKind
	Values []float64
	Total  float64
}

// Observation is one decoded logical row: a room plus its listed months and
// the four metric series in report role order (arrivals, nights, revenue,
// ADR). File, Page and Block record provenance; the builder sorts by them so
// the final tables do not depend on batch completion order.
type Observation struct {
	File   string
	Page   int
	Block  int
	Room   int
	Months []string
	// Metrics holds arrivals, nights, revenue, ADR, in that order.
	Metrics []MetricSeries
}

// Metric returns the series with the given raw column name.
func (o Observation) Metric(name string) (MetricSeries, bool) {
	for _, m := range o.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricSeries{}, false
}

// metricAt returns the series at the given role position, tolerating short
// observations from malformed pages.
func (o Observation) metricAt(i int) MetricSeries {
	if i < 0 || i >= len(o.Metrics) {
		return MetricSeries{}
	}
	return o.Metrics[i]
}
