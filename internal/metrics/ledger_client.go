// Package metrics exposes prometheus instrumentation for the withdrawal
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerCallTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "ledger_client",
		Name:      "calls_total",
		Help:      "Count of ledger API calls.",
	}, []string{"operation", "status"})

	ledgerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payout",
		Subsystem: "ledger_client",
		Name:      "call_duration_seconds",
		Help:      "Duration of ledger API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// LedgerClient records metrics for ledger API calls.
type LedgerClient struct{}

// NewLedgerClient constructs a LedgerClient.
func NewLedgerClient() *LedgerClient {
	return &LedgerClient{}
}

// Observe records one ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerCallTotal.WithLabelValues(operation, status).Inc()
	ledgerCallDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
