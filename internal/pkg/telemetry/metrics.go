package telemetry

// SLI metric names used for instrumentation.
const (
	// Latency
	MetricAPILatencyP50 = "api.latency.p50"
	MetricAPILatencyP95 = "api.latency.p95"
	MetricAPILatencyP99 = "api.latency.p99"

	// Throughput
	MetricRequestsPerSec = "api.requests_per_second"

	// Data freshness
	MetricCatalogFreshness  = "catalog.data_age_seconds"
	MetricForecastFreshness = "crowd.forecast_age_seconds"

	// Availability
	MetricUptime = "service.uptime_percentage"

	// Business
	MetricPlansComputed   = "business.plans_computed"
	MetricInfeasibleTrips = "business.infeasible_trips"
)
