package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for a conversion run.
// They are observability signals only; correctness never depends on them.
type Metrics struct {
	LinesRead      prometheus.Counter
	MalformedLines prometheus.Counter
	WordsFlushed   prometheus.Counter
	WordsDropped   prometheus.Counter

	ConversionDuration prometheus.Histogram
}

// NewMetrics creates and registers all converter metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.LinesRead,
		m.MalformedLines,
		m.WordsFlushed,
		m.WordsDropped,
		m.ConversionDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		LinesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "model2json",
			Name:      "lines_read_total",
			Help:      "Total lines read from the model file.",
		}),
		MalformedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "model2json",
			Name:      "malformed_lines_total",
			Help:      "Total lines skipped because they matched no pattern for the current section.",
		}),
		WordsFlushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "model2json",
			Name:      "words_flushed_total",
			Help:      "Total word artifacts written.",
		}),
		WordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "model2json",
			Name:      "words_dropped_total",
			Help:      "Total words dropped because their name is not filesystem-safe.",
		}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "model2json",
			Name:      "conversion_duration_seconds",
			Help:      "Wall-clock duration of a complete conversion run.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 1200},
		}),
	}
}
