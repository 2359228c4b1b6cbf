package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceAggregateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "balance",
		Name:      "aggregate_total",
		Help:      "Count of balance aggregation runs.",
	}, []string{"status"})

	balanceAggregateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payout",
		Subsystem: "balance",
		Name:      "aggregate_duration_seconds",
		Help:      "Duration of balance aggregation runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Balance tracks metrics for the balance aggregator.
type Balance struct{}

// NewBalance constructs a Balance.
func NewBalance() *Balance {
	return &Balance{}
}

// ObserveAggregate records one aggregation run.
func (m Balance) ObserveAggregate(err error, started time.Time) {
	status := statusOf(err)
	balanceAggregateTotal.WithLabelValues(status).Inc()
	balanceAggregateDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}
