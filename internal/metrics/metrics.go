package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalysesInFlight is the current number of analysis requests being processed.
	AnalysesInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "citysense",
		Subsystem: "analyzer",
		Name:      "analyses_in_flight",
		Help:      "Current number of analysis requests in flight.",
	})

	// AnalysesTotal counts finished analysis requests by result.
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "citysense",
		Subsystem: "analyzer",
		Name:      "analyses_total",
		Help:      "Total number of analysis requests processed, labeled by result.",
	}, []string{"result"})

	// AnalysisDurationSeconds is end-to-end time per analysis, measured inside the service.
	AnalysisDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "citysense",
		Subsystem: "analyzer",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end time to serve one analysis request (prompt build + inference + parse).",
		// Keep buckets fairly coarse to avoid high-cardinality time series.
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60, 120},
	}, []string{"result"})
)

// Result labels for AnalysesTotal and AnalysisDurationSeconds.
const (
	ResultCompleted   = "completed"
	ResultParseError  = "parse_error"
	ResultUnavailable = "unavailable"
)

// Register registers analyzer metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalysesInFlight,
			AnalysesTotal,
			AnalysisDurationSeconds,
		)
	})
}
