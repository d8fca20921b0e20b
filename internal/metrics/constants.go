package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports.
const Namespace = "umami"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameWebsocketClients     = "websocket_clients"
)

// Game metric names
const (
	MetricNameIngredientsBought = "ingredients_bought_total"
	MetricNameUpgradesBought    = "upgrades_bought_total"
	MetricNameServicesStarted   = "services_started_total"
	MetricNameDishesServed      = "dishes_served_total"
	MetricNameDishAccuracy      = "dish_accuracy"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNameServiceTimeouts   = "service_timeouts_total"
	MetricNameRunsFinished      = "runs_finished_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextWebsocketClients     = "Current number of connected websocket clients"
)

// Game metric help text
const (
	HelpTextIngredientsBought = "Total number of ingredient units bought"
	HelpTextUpgradesBought    = "Total number of upgrades bought"
	HelpTextServicesStarted   = "Total number of service phases started"
	HelpTextDishesServed      = "Total number of customers resolved, by outcome tier"
	HelpTextDishAccuracy      = "Accuracy of served dishes (0-100)"
	HelpTextMoneyEarned       = "Total money earned from customers"
	HelpTextMoneySpent        = "Total money spent on ingredients"
	HelpTextServiceTimeouts   = "Total number of services that ran out of time"
	HelpTextRunsFinished      = "Total number of finished runs, by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelIngredient = "ingredient"
	LabelUpgrade    = "upgrade"
	LabelTier       = "tier"
	LabelOutcome    = "outcome"
)

// PathUnmatched is the path label for requests no route matched.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AccuracyBuckets follow the outcome tier boundaries.
var AccuracyBuckets = []float64{40, 60, 75, 90, 100}
