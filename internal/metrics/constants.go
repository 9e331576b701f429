package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric
const Namespace = "ascendant"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Engine metric names
const (
	MetricNameOperations          = "operations_total"
	MetricNameOperationDuration   = "operation_duration_seconds"
	MetricNameItemsCompleted      = "items_completed_total"
	MetricNameItemsMissed         = "items_missed_total"
	MetricNameExpAwarded          = "exp_awarded_total"
	MetricNameGoldAwarded         = "gold_awarded_total"
	MetricNameLevelChanges        = "level_changes_total"
	MetricNameQuotaRejections     = "quota_rejections_total"
	MetricNamePenalties           = "penalties_total"
	MetricNameRedemptions         = "redemptions_total"
	MetricNamePersistenceFailures = "persistence_failures_total"
	MetricNameStateVersion        = "state_version"
	MetricNameUserLevel           = "user_level"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of notifications published on the event bus"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Engine metric help text
const (
	HelpTextOperations          = "Engine operations by name and result"
	HelpTextOperationDuration   = "Engine operation latency in seconds"
	HelpTextItemsCompleted      = "Completed work items by kind and reward path"
	HelpTextItemsMissed         = "Work items marked missed by kind"
	HelpTextExpAwarded          = "Total experience awarded"
	HelpTextGoldAwarded         = "Total gold awarded"
	HelpTextLevelChanges        = "Level ups and demotions"
	HelpTextQuotaRejections     = "Creations or completions rejected by the rank quota"
	HelpTextPenalties           = "Penalty transitions by kind"
	HelpTextRedemptions         = "Redemption outcomes"
	HelpTextPersistenceFailures = "Failed persistence writes by operation"
	HelpTextStateVersion        = "Version of the last committed state"
	HelpTextUserLevel           = "Current user level"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelOperation  = "operation"
	LabelResult     = "result"
	LabelKind       = "kind"
	LabelRewardPath = "reward_path"
	LabelDirection  = "direction"
	LabelOutcome    = "outcome"
)

// Label values
const (
	ResultOK    = "ok"
	ResultError = "error"

	RewardPathOnTime = "on_time"
	RewardPathLate   = "late"

	DirectionUp   = "up"
	DirectionDown = "down"

	PenaltyCurse         = "curse"
	PenaltyShadowFatigue = "shadow_fatigue"
	PenaltySideQuestLock = "side_quest_lock"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// OperationLatencyBuckets are the histogram buckets for engine operations
var OperationLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}

// Log messages
const (
	LogMsgEventPayloadInvalid = "Notification payload could not be decoded"
)
