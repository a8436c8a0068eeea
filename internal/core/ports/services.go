package ports

import (
	"context"

	"github.com/ramana119/yatra/internal/core/domain"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishPlanEvent(ctx context.Context, event *domain.PlanEvent) error
	PublishCrowdForecast(ctx context.Context, forecast *domain.CrowdForecast) error
	PublishBroadcast(ctx context.Context, data []byte) error
}

// EventSubscriber subscribes to domain events from a message broker.
type EventSubscriber interface {
	SubscribeCrowdForecasts(ctx context.Context, handler func(ctx context.Context, forecast *domain.CrowdForecast) error) error
	SubscribePlanEvents(ctx context.Context, handler func(ctx context.Context, event *domain.PlanEvent) error) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
