// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "landgrid",
		Subsystem: "ledger_gateway",
		Name:      "operations_total",
		Help:      "Count of contract gateway operations.",
	}, []string{"operation", "status"})

	gatewayOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "landgrid",
		Subsystem: "ledger_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of contract gateway operations, confirmation wait included.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms..~82s
	}, []string{"operation", "status"})
)

// Gateway tracks metrics for the contract gateway.
type Gateway struct{}

// NewGateway constructs a Gateway collector.
func NewGateway() *Gateway {
	return &Gateway{}
}

// Observe records one gateway operation outcome and duration.
func (Gateway) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	gatewayOperationsTotal.WithLabelValues(operation, status).Inc()
	gatewayOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
