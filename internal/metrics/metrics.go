package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "velo"

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeCached  = "cached"
	OutcomeError   = "error"
	OutcomeMiss    = "miss"
)

var (
	// EnrichmentTotal counts enrichment requests.
	// Labels: outcome (success, cached, error)
	EnrichmentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrichment_total",
		Help:      "Total climb side enrichments by outcome",
	}, []string{"outcome"})

	// EnrichmentDuration measures time spent generating a fresh enrichment.
	EnrichmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "enrichment_duration_seconds",
		Help:      "Time to generate and persist one enriched climb side",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	// ProfilePoints tracks the size of generated profiles.
	ProfilePoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_points",
		Help:      "Number of points in generated elevation profiles",
		Buckets:   prometheus.ExponentialBuckets(16, 2, 8),
	})

	// StoreOperations counts store calls.
	// Labels: op (get, put, exists, delete), outcome (success, miss, error)
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Total enriched climb store operations",
	}, []string{"op", "outcome"})
)

// RecordStoreOp increments the store counter for op, deriving the outcome from err.
// A miss is reported by the caller through OutcomeMiss.
func RecordStoreOp(op string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	StoreOperations.WithLabelValues(op, outcome).Inc()
}
