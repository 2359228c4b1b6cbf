package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	withdrawalResolveFeeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "resolve_fee_total",
		Help:      "Count of fee resolution attempts.",
	}, []string{"status"})

	withdrawalResolveFeeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "resolve_fee_duration_seconds",
		Help:      "Duration of fee resolution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	withdrawalTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "transactions_total",
		Help:      "Count of assembled transactions by phase.",
	}, []string{"phase", "status"})

	withdrawalTransactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "transaction_duration_seconds",
		Help:      "Duration of transaction assembly and submission.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"phase", "status"})

	withdrawalTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "withdrawals_total",
		Help:      "Count of completed withdrawal attempts by flow.",
	}, []string{"flow", "status"})

	withdrawalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "withdrawal_duration_seconds",
		Help:      "End-to-end duration of withdrawal attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"flow", "status"})

	withdrawalFeeOrphanedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payout",
		Subsystem: "withdrawal",
		Name:      "fee_orphaned_total",
		Help:      "Count of fee transactions whose main transaction failed and needs manual reconciliation.",
	})
)

// Withdrawal tracks metrics for the withdrawal orchestrator.
type Withdrawal struct{}

// NewWithdrawal constructs a Withdrawal.
func NewWithdrawal() *Withdrawal {
	return &Withdrawal{}
}

// ObserveResolveFee records a fee resolution outcome and duration.
func (m Withdrawal) ObserveResolveFee(err error, started time.Time) {
	status := statusOf(err)
	withdrawalResolveFeeTotal.WithLabelValues(status).Inc()
	withdrawalResolveFeeDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}

// ObserveTransaction records one assembled transaction by phase (fee/main).
func (m Withdrawal) ObserveTransaction(phase string, err error, started time.Time) {
	status := statusOf(err)
	withdrawalTransactionTotal.WithLabelValues(phase, status).Inc()
	withdrawalTransactionDuration.WithLabelValues(phase, status).
		Observe(time.Since(started).Seconds())
}

// ObserveWithdrawal records a completed attempt by flow (single/two phase).
func (m Withdrawal) ObserveWithdrawal(flow string, err error, started time.Time) {
	status := statusOf(err)
	withdrawalTotal.WithLabelValues(flow, status).Inc()
	withdrawalDuration.WithLabelValues(flow, status).
		Observe(time.Since(started).Seconds())
}

// FeeOrphaned counts a fee transaction left without its main transaction.
func (m Withdrawal) FeeOrphaned() {
	withdrawalFeeOrphanedTotal.Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
