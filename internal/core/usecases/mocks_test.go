package usecases_test

import (
	"context"
	"fmt"
	"time"

	"github.com/ramana119/yatra/internal/core/domain"
)

// --- Mock DestinationRepository ---

type mockDestinationRepo struct {
	getByIDFn    func(ctx context.Context, id string) (*domain.Destination, error)
	getByIDsFn   func(ctx context.Context, ids []string) ([]domain.Destination, error)
	listFn       func(ctx context.Context) ([]domain.Destination, error)
	findNearbyFn func(ctx context.Context, lat, lng, radius float64, limit int) ([]domain.Destination, error)
	searchFn     func(ctx context.Context, query string, limit int) ([]domain.Destination, error)
}

func (m *mockDestinationRepo) Upsert(ctx context.Context, dest *domain.Destination) error {
	return nil
}

func (m *mockDestinationRepo) UpsertBatch(ctx context.Context, dests []domain.Destination) error {
	return nil
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockDestinationRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockDestinationRepo) FindNearby(ctx context.Context, lat, lng, radius float64, limit int) ([]domain.Destination, error) {
	if m.findNearbyFn != nil {
		return m.findNearbyFn(ctx, lat, lng, radius, limit)
	}
	return nil, nil
}

func (m *mockDestinationRepo) Search(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

// --- Mock CrowdForecastRepository ---

type mockForecastRepo struct {
	upsertBatchFn       func(ctx context.Context, forecasts []domain.CrowdForecast) error
	listByDestinationFn func(ctx context.Context, destinationID string, from time.Time, days int) ([]domain.CrowdForecast, error)
}

func (m *mockForecastRepo) UpsertBatch(ctx context.Context, forecasts []domain.CrowdForecast) error {
	if m.upsertBatchFn != nil {
		return m.upsertBatchFn(ctx, forecasts)
	}
	return nil
}

func (m *mockForecastRepo) ListByDestination(ctx context.Context, destinationID string, from time.Time, days int) ([]domain.CrowdForecast, error) {
	if m.listByDestinationFn != nil {
		return m.listByDestinationFn(ctx, destinationID, from, days)
	}
	return nil, nil
}

// --- Mock CacheService ---

type mockCache struct {
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := m.store[key]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	planEvents []*domain.PlanEvent
	forecasts  []*domain.CrowdForecast
}

func (m *mockPublisher) PublishPlanEvent(ctx context.Context, event *domain.PlanEvent) error {
	m.planEvents = append(m.planEvents, event)
	return nil
}

func (m *mockPublisher) PublishCrowdForecast(ctx context.Context, forecast *domain.CrowdForecast) error {
	m.forecasts = append(m.forecasts, forecast)
	return nil
}

func (m *mockPublisher) PublishBroadcast(ctx context.Context, data []byte) error {
	return nil
}

// --- Mock EventSubscriber ---

type mockSubscriber struct {
	crowdHandler func(ctx context.Context, forecast *domain.CrowdForecast) error
	planHandler  func(ctx context.Context, event *domain.PlanEvent) error
}

func (m *mockSubscriber) SubscribeCrowdForecasts(ctx context.Context, handler func(ctx context.Context, forecast *domain.CrowdForecast) error) error {
	m.crowdHandler = handler
	return nil
}

func (m *mockSubscriber) SubscribePlanEvents(ctx context.Context, handler func(ctx context.Context, event *domain.PlanEvent) error) error {
	m.planHandler = handler
	return nil
}
