package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orchestratorWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "orchestrator",
		Name:      "writes_total",
		Help:      "Count of orchestrated write operations.",
	}, []string{"operation", "status"})

	orchestratorWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "landgrid",
		Subsystem: "orchestrator",
		Name:      "write_duration_seconds",
		Help:      "Duration of orchestrated write operations.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms..~82s
	}, []string{"operation", "status"})

	orchestratorBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "orchestrator",
		Name:      "batches_total",
		Help:      "Count of batch runs by terminal state.",
	}, []string{"operation", "outcome"})

	orchestratorBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "landgrid",
		Subsystem: "orchestrator",
		Name:      "batch_duration_seconds",
		Help:      "Duration of batch runs.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 100ms..~14min
	}, []string{"operation", "outcome"})

	orchestratorBatchPlotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "orchestrator",
		Name:      "batch_plots_total",
		Help:      "Plots processed by batch runs, by result.",
	}, []string{"operation", "result"})
)

// Orchestrator tracks metrics for the transaction orchestrator.
type Orchestrator struct{}

// NewOrchestrator constructs an Orchestrator collector.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// ObserveWrite records one write operation outcome and duration.
func (Orchestrator) ObserveWrite(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	orchestratorWritesTotal.WithLabelValues(operation, status).Inc()
	orchestratorWriteDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records a batch run's terminal state and per-plot results.
func (Orchestrator) ObserveBatch(operation string, requested, succeeded, failed uint64, stopped bool, started time.Time) {
	outcome := "completed"
	if stopped {
		outcome = "stopped"
	}

	orchestratorBatchesTotal.WithLabelValues(operation, outcome).Inc()
	orchestratorBatchDuration.WithLabelValues(operation, outcome).Observe(time.Since(started).Seconds())
	orchestratorBatchPlotsTotal.WithLabelValues(operation, "succeeded").Add(float64(succeeded))
	orchestratorBatchPlotsTotal.WithLabelValues(operation, "failed").Add(float64(failed))
}
