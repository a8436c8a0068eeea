package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ramana119/yatra/internal/adapters/http"
	natsadapter "github.com/ramana119/yatra/internal/adapters/nats"
	"github.com/ramana119/yatra/internal/adapters/postgres"
	"github.com/ramana119/yatra/internal/adapters/valkey"
	"github.com/ramana119/yatra/internal/core/planner"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/core/usecases"
	"github.com/ramana119/yatra/internal/pkg/config"
	"github.com/ramana119/yatra/internal/pkg/logging"
	"github.com/ramana119/yatra/internal/pkg/metrics"
	"github.com/ramana119/yatra/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("yatra-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Database
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Report pool pressure so saturation shows up on dashboards.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.UpdateDBPoolMetrics(db.Pool.Stat())
			}
		}
	}()

	// Cache. Services take the port interface, so only hand them a
	// value when the connection actually came up.
	var cacheSvc ports.CacheService
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		slog.Warn("valkey unavailable", "error", err)
		cache = nil
	} else {
		defer cache.Close()
		cacheSvc = cache
	}

	// NATS
	var eventPub ports.EventPublisher
	publisher, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable", "error", err)
	} else {
		defer publisher.Close()
		eventPub = publisher
	}

	// Raw NATS connection for WebSocket relay
	natsConn, err := natsadapter.RawConn(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats ws conn unavailable", "error", err)
	}

	// Repos
	destRepo := postgres.NewDestinationRepo(db)
	forecastRepo := postgres.NewCrowdForecastRepo(db)

	// Trip engine
	engine := planner.New(planner.Config{
		TourismHoursPerDestination: cfg.Planner.TourismHoursPerDestination,
		SightseeingHoursPerDay:     cfg.Planner.SightseeingHoursPerDay,
		MaxTravelHoursPerDay:       cfg.Planner.MaxTravelHoursPerDay,
	})

	// Use cases
	destSvc := usecases.NewDestinationService(destRepo, cacheSvc)
	plannerSvc := usecases.NewPlannerService(destRepo, cacheSvc, eventPub, engine)
	crowdSvc := usecases.NewCrowdService(destRepo, forecastRepo, eventPub)

	deps := &http.Dependencies{
		Destinations: destSvc,
		Planner:      plannerSvc,
		Crowd:        crowdSvc,
		NATS:         natsConn,
		DB:           db,
		Cache:        cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "Yatra API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
