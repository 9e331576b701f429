package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Engine Metrics
var (
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameOperations,
			Help:      HelpTextOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameOperationDuration,
			Help:      HelpTextOperationDuration,
			Buckets:   OperationLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	ItemsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsCompleted,
			Help:      HelpTextItemsCompleted,
		},
		[]string{LabelKind, LabelRewardPath},
	)

	ItemsMissed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsMissed,
			Help:      HelpTextItemsMissed,
		},
		[]string{LabelKind},
	)

	ExpAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameExpAwarded,
			Help:      HelpTextExpAwarded,
		},
	)

	GoldAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGoldAwarded,
			Help:      HelpTextGoldAwarded,
		},
	)

	LevelChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLevelChanges,
			Help:      HelpTextLevelChanges,
		},
		[]string{LabelDirection},
	)

	QuotaRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameQuotaRejections,
			Help:      HelpTextQuotaRejections,
		},
		[]string{LabelKind},
	)

	Penalties = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNamePenalties,
			Help:      HelpTextPenalties,
		},
		[]string{LabelKind},
	)

	Redemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRedemptions,
			Help:      HelpTextRedemptions,
		},
		[]string{LabelOutcome},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNamePersistenceFailures,
			Help:      HelpTextPersistenceFailures,
		},
		[]string{LabelOperation},
	)

	StateVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameStateVersion,
			Help:      HelpTextStateVersion,
		},
	)

	UserLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameUserLevel,
			Help:      HelpTextUserLevel,
		},
	)
)

// ObserveOperation records one engine operation
func ObserveOperation(op string, started time.Time, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	Operations.WithLabelValues(op, result).Inc()
	OperationDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// ObserveCommit records gauges after a committed transition
func ObserveCommit(version uint64, level int) {
	StateVersion.Set(float64(version))
	UserLevel.Set(float64(level))
}
