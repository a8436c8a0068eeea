package ports

import (
	"context"
	"time"

	"github.com/ramana119/yatra/internal/core/domain"
)

// DestinationRepository persists the destination catalog.
type DestinationRepository interface {
	Upsert(ctx context.Context, dest *domain.Destination) error
	UpsertBatch(ctx context.Context, dests []domain.Destination) error
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	// GetByIDs returns the destinations for the given IDs in arbitrary order;
	// IDs that do not resolve are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]domain.Destination, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Destination, error)
}

// CrowdForecastRepository persists predicted crowd levels.
type CrowdForecastRepository interface {
	UpsertBatch(ctx context.Context, forecasts []domain.CrowdForecast) error
	// ListByDestination returns forecasts for the coming days, ordered by date.
	ListByDestination(ctx context.Context, destinationID string, from time.Time, days int) ([]domain.CrowdForecast, error)
}
