package http

import (
	"github.com/nats-io/nats.go"

	"github.com/ramana119/yatra/internal/adapters/postgres"
	"github.com/ramana119/yatra/internal/adapters/valkey"
	"github.com/ramana119/yatra/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Destinations *usecases.DestinationService
	Planner      *usecases.PlannerService
	Crowd        *usecases.CrowdService
	NATS         *nats.Conn
	DB           *postgres.DB
	Cache        *valkey.Cache
}
