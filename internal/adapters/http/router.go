package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// SetupRoutes registers all REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // Balance speed vs compression ratio
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
		},
		SkipFailedRequests: false,
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	// Health & readiness stay outside the timeout group; the checks are fast.
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	// REST API v1, 15s per-request timeout
	v1 := app.Group("/v1")
	v1.Get("/destinations", timeout.NewWithContext(ListDestinationsHandler(deps), 15*time.Second))
	v1.Get("/destinations/nearby", timeout.NewWithContext(NearbyDestinationsHandler(deps), 15*time.Second))
	v1.Get("/destinations/search", timeout.NewWithContext(SearchDestinationsHandler(deps), 15*time.Second))
	v1.Get("/destinations/batch", timeout.NewWithContext(BatchDestinationsHandler(deps), 15*time.Second))
	v1.Get("/destinations/:id", timeout.NewWithContext(GetDestinationHandler(deps), 15*time.Second))
	v1.Get("/destinations/:id/crowd", timeout.NewWithContext(DestinationCrowdHandler(deps), 15*time.Second))

	v1.Get("/transport/modes", timeout.NewWithContext(TransportModesHandler(deps), 15*time.Second))

	// Trip planner
	v1.Post("/planner/distances", timeout.NewWithContext(DistancesHandler(deps), 15*time.Second))
	v1.Post("/planner/feasibility", timeout.NewWithContext(FeasibilityHandler(deps), 15*time.Second))
	v1.Post("/planner/recommendation", timeout.NewWithContext(RecommendationHandler(deps), 15*time.Second))
	v1.Post("/planner/itinerary", timeout.NewWithContext(ItineraryHandler(deps), 15*time.Second))
	v1.Post("/planner/itinerary/pdf", timeout.NewWithContext(ItineraryPDFHandler(deps), 15*time.Second))

	// GraphQL
	app.Post("/graphql", GraphQLHandler(deps))

	// API documentation (Swagger UI)
	SetupDocs(app)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(WebSocketHandler(deps.NATS)))
}
