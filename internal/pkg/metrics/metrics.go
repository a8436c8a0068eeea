package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yatra",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yatra",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// Trip-planner metrics
	FeasibilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "planner",
		Name:      "feasibility_checks_total",
		Help:      "Total feasibility checks computed",
	}, []string{"mode", "feasible"})

	Recommendations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "planner",
		Name:      "recommendations_total",
		Help:      "Total transport recommendations computed",
	}, []string{"mode", "realistic"})

	ItinerariesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "planner",
		Name:      "itineraries_generated_total",
		Help:      "Total day-by-day itineraries generated",
	}, []string{"style"})

	SkippedDestinations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "planner",
		Name:      "skipped_destinations_total",
		Help:      "Destination IDs silently dropped because they did not resolve",
	})

	PDFRenders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "planner",
		Name:      "pdf_renders_total",
		Help:      "Total itinerary PDF documents rendered",
	})

	ForecastsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "crowd",
		Name:      "forecasts_computed_total",
		Help:      "Total crowd-level forecasts computed",
	}, []string{"level"})

	PlanEventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "nats",
		Name:      "plan_events_processed_total",
		Help:      "Plan events consumed from the work-queue stream",
	}, []string{"operation"})

	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yatra",
		Subsystem: "ws",
		Name:      "active_connections",
		Help:      "Current number of active WebSocket connections",
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total cache hits",
	}, []string{"operation"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yatra",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total cache misses",
	}, []string{"operation"})

	// Database pool metrics
	DBPoolConnsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yatra",
		Subsystem: "db",
		Name:      "pool_conns_open",
		Help:      "Total connections open in the database pool",
	})

	DBPoolConnsAcquired = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yatra",
		Subsystem: "db",
		Name:      "pool_conns_acquired",
		Help:      "Connections currently acquired from the database pool",
	})

	DBPoolConnsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yatra",
		Subsystem: "db",
		Name:      "pool_conns_idle",
		Help:      "Idle connections in the database pool",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}

// UpdateDBPoolMetrics updates database pool metrics from pgx pool stats.
func UpdateDBPoolMetrics(stat interface{}) {
	// Uses a structural interface to avoid importing pgxpool here,
	// keeping the metrics package free of driver dependencies.
	type poolStat interface {
		AcquiredConns() int32
		IdleConns() int32
		TotalConns() int32
	}

	if s, ok := stat.(poolStat); ok {
		DBPoolConnsAcquired.Set(float64(s.AcquiredConns()))
		DBPoolConnsIdle.Set(float64(s.IdleConns()))
		DBPoolConnsOpen.Set(float64(s.TotalConns()))
	}
}
