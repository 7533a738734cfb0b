package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Count of read-model resolutions.",
	}, []string{"kind", "status"})

	resolverResolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "landgrid",
		Subsystem: "resolver",
		Name:      "resolution_duration_seconds",
		Help:      "Duration of read-model resolutions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	resolverScanSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "landgrid",
		Subsystem: "resolver",
		Name:      "scan_size",
		Help:      "Token ids attempted per resolution scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..~262k
	}, []string{"kind"})

	resolverSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "resolver",
		Name:      "skipped_reads_total",
		Help:      "Count of per-token reads skipped during scans.",
	}, []string{"kind"})
)

// Resolver tracks metrics for the read-model resolvers.
type Resolver struct{}

// NewResolver constructs a Resolver collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveResolve records one resolution outcome with its scan accounting.
func (Resolver) ObserveResolve(kind string, err error, attempted, skipped uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	resolverResolutionsTotal.WithLabelValues(kind, status).Inc()
	resolverResolutionDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
	resolverScanSize.WithLabelValues(kind).Observe(float64(attempted))
	resolverSkippedTotal.WithLabelValues(kind).Add(float64(skipped))
}
