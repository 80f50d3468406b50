package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ControlNumbersIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "controlpay",
			Name:      "control_numbers_issued_total",
			Help:      "Control numbers successfully generated",
		},
	)

	RedemptionConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "controlpay",
			Name:      "redemption_conflicts_total",
			Help:      "Redemption attempts rejected by the atomic guard",
		},
	)

	EventsReconciled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "controlpay",
			Name:      "events_reconciled_total",
			Help:      "External payment events folded into the ledger, by outcome",
		},
		[]string{"provider", "outcome"},
	)

	UnmappedProviderStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "controlpay",
			Name:      "unmapped_provider_status_total",
			Help:      "Provider statuses with no vocabulary mapping, defaulted to pending",
		},
		[]string{"provider"},
	)

	ServicesActivated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "controlpay",
			Name:      "services_activated_total",
			Help:      "Services activated by the delivery dispatcher",
		},
	)

	ProviderCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "controlpay",
			Name:      "provider_call_duration_seconds",
			Help:      "Duration of provider adapter calls",
			Buckets: []float64{
				0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10,
			},
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		ControlNumbersIssued,
		RedemptionConflicts,
		EventsReconciled,
		UnmappedProviderStatus,
		ServicesActivated,
		ProviderCallDuration,
	)
}
