package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/planner"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// PlannerService runs the trip engine over catalog destinations. The engine
// itself is pure; this service resolves destination IDs, layers caching on
// the distance queries, and emits plan events for downstream analytics.
type PlannerService struct {
	dests     ports.DestinationRepository
	cache     ports.CacheService
	publisher ports.EventPublisher
	engine    *planner.Engine
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(
	dests ports.DestinationRepository,
	cache ports.CacheService,
	publisher ports.EventPublisher,
	engine *planner.Engine,
) *PlannerService {
	return &PlannerService{dests: dests, cache: cache, publisher: publisher, engine: engine}
}

// resolve maps ordered destination IDs to catalog entries, preserving the
// caller's order. Unknown IDs are dropped, never errored: the surrounding
// UI pre-validates, and a degraded plan beats no plan. The dropped IDs are
// returned for the skipped_ids audit field.
func (s *PlannerService) resolve(ctx context.Context, ids []string) ([]domain.Destination, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	found, err := s.dests.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve destinations: %w", err)
	}

	byID := make(map[string]domain.Destination, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}

	var (
		ordered []domain.Destination
		skipped []string
	)
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		} else {
			skipped = append(skipped, id)
		}
	}
	if len(skipped) > 0 {
		metrics.SkippedDestinations.Add(float64(len(skipped)))
	}
	return ordered, skipped, nil
}

// DistanceMatrix returns the legs of an ordered destination list: the N-1
// consecutive legs by default, or the full pairwise matrix when allPairs is
// set. Results are cached; the catalog only changes on seed runs.
func (s *PlannerService) DistanceMatrix(ctx context.Context, ids []string, allPairs bool) ([]domain.LegDistance, []string, error) {
	cacheKey := "planner:legs:" + strconv.FormatBool(allPairs) + ":" + strings.Join(ids, ",")
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var legs []domain.LegDistance
			if err := json.Unmarshal(data, &legs); err == nil {
				metrics.CacheHits.WithLabelValues("planner_legs").Inc()
				return legs, nil, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("planner_legs").Inc()
	}

	dests, skipped, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	var legs []domain.LegDistance
	if allPairs {
		legs = planner.AllPairs(dests)
	} else {
		legs = planner.Legs(dests)
	}

	if s.cache != nil && len(skipped) == 0 {
		if data, err := json.Marshal(legs); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return legs, skipped, nil
}

// CheckFeasibility reports whether requestedDays covers the ordered trip by
// the given mode. Infeasibility is data, not an error.
func (s *PlannerService) CheckFeasibility(ctx context.Context, ids []string, mode domain.TransportMode, requestedDays int) (*domain.FeasibilityResult, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported transport type: %s", mode)
	}

	dests, skipped, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := s.engine.CheckFeasibility(dests, mode, requestedDays)
	res.SkippedIDs = skipped

	metrics.FeasibilityChecks.WithLabelValues(string(mode), strconv.FormatBool(res.Feasible)).Inc()
	s.publishPlanEvent(ctx, "feasibility", ids, mode, requestedDays, &res.Feasible)

	return &res, nil
}

// Recommend picks the best transport mode for the trip.
func (s *PlannerService) Recommend(ctx context.Context, ids []string, requestedDays int, isPremium bool) (*domain.TransportRecommendation, error) {
	dests, skipped, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	rec := s.engine.Recommend(dests, requestedDays, isPremium)
	rec.SkippedIDs = skipped

	metrics.Recommendations.WithLabelValues(string(rec.RecommendedType), strconv.FormatBool(rec.IsRealistic)).Inc()
	s.publishPlanEvent(ctx, "recommendation", ids, rec.RecommendedType, requestedDays, nil)

	return &rec, nil
}

// GenerateItinerary produces a day-by-day plan with a fresh plan ID.
func (s *PlannerService) GenerateItinerary(ctx context.Context, ids []string, mode domain.TransportMode, requestedDays int, startDate time.Time, style domain.TravelStyle) (*domain.Itinerary, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported transport type: %s", mode)
	}
	if style == "" {
		style = domain.StyleMobile
	}
	if style != domain.StyleBaseHotel && style != domain.StyleMobile {
		return nil, fmt.Errorf("unsupported travel style: %s", style)
	}
	if requestedDays < 1 {
		return nil, fmt.Errorf("number of days must be at least 1")
	}

	dests, skipped, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	days := s.engine.Generate(dests, mode, requestedDays, startDate, style)

	itinerary := &domain.Itinerary{
		PlanID:     uuid.New().String(),
		Mode:       mode,
		Style:      style,
		Days:       days,
		SkippedIDs: skipped,
	}

	metrics.ItinerariesGenerated.WithLabelValues(string(style)).Inc()
	s.publishPlanEvent(ctx, "itinerary", ids, mode, requestedDays, nil)

	return itinerary, nil
}

// TransportModes returns the static per-mode attribute table.
func (s *PlannerService) TransportModes() map[domain.TransportMode]planner.ModeProfile {
	return planner.Profiles()
}

// publishPlanEvent emits a best-effort analytics event; delivery failures
// never surface to the caller.
func (s *PlannerService) publishPlanEvent(ctx context.Context, op string, ids []string, mode domain.TransportMode, days int, feasible *bool) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishPlanEvent(ctx, &domain.PlanEvent{
		PlanID:         uuid.New().String(),
		Operation:      op,
		DestinationIDs: ids,
		Mode:           mode,
		RequestedDays:  days,
		Feasible:       feasible,
		ComputedAt:     time.Now().UTC(),
	})
}
