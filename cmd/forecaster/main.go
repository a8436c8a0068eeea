package main

import (
	"context"
	"log"
	"log/slog"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	natsadapter "github.com/ramana119/yatra/internal/adapters/nats"
	"github.com/ramana119/yatra/internal/adapters/postgres"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/core/usecases"
	"github.com/ramana119/yatra/internal/pkg/config"
	"github.com/ramana119/yatra/internal/pkg/logging"
	"github.com/ramana119/yatra/internal/workflows"
)

func main() {
	cfg, err := config.Load("yatra-forecaster")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup("info", "json")

	ctx := context.Background()

	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	var eventPub ports.EventPublisher
	publisher, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable, forecasts will not be published live", "error", err)
	} else {
		defer publisher.Close()
		eventPub = publisher
	}

	destRepo := postgres.NewDestinationRepo(db)
	forecastRepo := postgres.NewCrowdForecastRepo(db)
	crowdSvc := usecases.NewCrowdService(destRepo, forecastRepo, eventPub)

	// Drain the plan-event work queue into the analytics tally. Without a
	// durable consumer the work-queue stream just accumulates until MaxAge.
	subscriber, err := natsadapter.NewSubscriber(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats subscriber unavailable, plan events will not be consumed", "error", err)
	} else {
		defer subscriber.Close()
		analytics := usecases.NewPlanAnalytics()
		if err := analytics.Run(ctx, subscriber); err != nil {
			slog.Warn("plan event subscription failed", "error", err)
		}
	}

	// Connect to Temporal
	c, err := client.Dial(client.Options{
		HostPort: cfg.Temporal.HostPort,
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})

	// Register workflow & activities
	w.RegisterWorkflow(workflows.ForecastRefreshWorkflow)
	w.RegisterActivity(&workflows.ForecastActivities{
		CrowdService: crowdSvc,
		Destinations: destRepo,
	})

	slog.Info("forecaster worker started", "task_queue", cfg.Temporal.TaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("worker: %v", err)
	}
}
