package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// DestinationService handles destination-catalog business logic.
type DestinationService struct {
	dests ports.DestinationRepository
	cache ports.CacheService
}

// NewDestinationService creates a new DestinationService.
func NewDestinationService(dests ports.DestinationRepository, cache ports.CacheService) *DestinationService {
	return &DestinationService{dests: dests, cache: cache}
}

// List returns the full catalog. Cached briefly; the catalog is static
// between seed runs.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	const cacheKey = "destinations:all"
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var dests []domain.Destination
			if err := json.Unmarshal(data, &dests); err == nil {
				metrics.CacheHits.WithLabelValues("destinations_list").Inc()
				return dests, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("destinations_list").Inc()
	}

	dests, err := s.dests.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(dests); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return dests, nil
}

// FindNearby returns destinations within radiusMeters of the given point.
func (s *DestinationService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]domain.Destination, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	cacheKey := fmt.Sprintf("destinations:nearby:%.4f:%.4f:%.0f:%d", lat, lng, radiusMeters, limit)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var dests []domain.Destination
			if err := json.Unmarshal(data, &dests); err == nil {
				metrics.CacheHits.WithLabelValues("destinations_nearby").Inc()
				return dests, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("destinations_nearby").Inc()
	}

	dests, err := s.dests.FindNearby(ctx, lat, lng, radiusMeters, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(dests); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 300)
		}
	}

	return dests, nil
}

// Search performs fuzzy + full-text search on destination names.
func (s *DestinationService) Search(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	if query == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.dests.Search(ctx, query, limit)
}

// GetByID returns a single destination.
func (s *DestinationService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	cacheKey := "destinations:id:" + id
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var dest domain.Destination
			if err := json.Unmarshal(data, &dest); err == nil {
				metrics.CacheHits.WithLabelValues("destinations_id").Inc()
				return &dest, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("destinations_id").Inc()
	}

	dest, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(dest); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return dest, nil
}

// GetByIDs returns destinations for the given IDs, in request order.
// IDs that do not resolve are dropped silently.
func (s *DestinationService) GetByIDs(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.dests.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Destination, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}

	ordered := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}
