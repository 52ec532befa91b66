package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ReportsTotal counts reports committed to the feed, labeled by source (app|external).
	ReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "feed",
		Name:      "reports_total",
		Help:      "Total number of reports inserted into the feed, labeled by source.",
	}, []string{"source"})

	FeedSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "haypaso",
		Subsystem: "feed",
		Name:      "size",
		Help:      "Current number of reports held by the feed store.",
	})

	// ValidationFailuresTotal counts rejected submissions by field.
	ValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "submission",
		Name:      "validation_failures_total",
		Help:      "Total number of drafts rejected by the report validator, labeled by field.",
	}, []string{"field"})

	LocationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "submission",
		Name:      "location_total",
		Help:      "Outcome of best-effort geolocation per draft (acquired|unavailable|discarded).",
	}, []string{"result"})

	DraftsOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "haypaso",
		Subsystem: "submission",
		Name:      "drafts_open",
		Help:      "Number of drafts currently held in memory.",
	})

	AdvisoryTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "advisory",
		Name:      "summaries_total",
		Help:      "Advisory computations labeled by result (ok|empty|error|stale).",
	}, []string{"result"})

	AdvisoryDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "haypaso",
		Subsystem: "advisory",
		Name:      "duration_seconds",
		Help:      "Time spent waiting for the text-generation collaborator.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	})

	ExtractionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "ingest",
		Name:      "extractions_total",
		Help:      "Structured extractions from social posts labeled by result (ok|fallback).",
	}, []string{"result"})

	WebhookTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haypaso",
		Subsystem: "events",
		Name:      "webhook_deliveries_total",
		Help:      "Report-created webhook deliveries labeled by result (ok|failed).",
	}, []string{"result"})
)

// Register registers the metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ReportsTotal,
			FeedSize,
			ValidationFailuresTotal,
			LocationTotal,
			DraftsOpen,
			AdvisoryTotal,
			AdvisoryDurationSeconds,
			ExtractionTotal,
			WebhookTotal,
		)
	})
}
