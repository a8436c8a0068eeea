package usecases

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// CrowdService computes and serves crowd-level forecasts per destination.
// The model is a deterministic seasonality heuristic: same destination and
// date always produce the same forecast.
type CrowdService struct {
	dests     ports.DestinationRepository
	forecasts ports.CrowdForecastRepository
	publisher ports.EventPublisher
}

// NewCrowdService creates a new CrowdService.
func NewCrowdService(
	dests ports.DestinationRepository,
	forecasts ports.CrowdForecastRepository,
	publisher ports.EventPublisher,
) *CrowdService {
	return &CrowdService{dests: dests, forecasts: forecasts, publisher: publisher}
}

// ForDestination returns forecasts for the coming days. Stored forecasts are
// preferred; when the store has none (fresh deployment, forecaster not yet
// run) the forecasts are computed on the fly.
func (s *CrowdService) ForDestination(ctx context.Context, destinationID string, days int) ([]domain.CrowdForecast, error) {
	if days <= 0 || days > 14 {
		days = 7
	}

	from := truncateToDay(time.Now().UTC())
	stored, err := s.forecasts.ListByDestination(ctx, destinationID, from, days)
	if err == nil && len(stored) > 0 {
		return stored, nil
	}

	dest, err := s.dests.GetByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("destination not found: %s", destinationID)
	}
	return ComputeForecasts(*dest, from, days), nil
}

// RefreshAll recomputes forecasts for the whole catalog over horizonDays,
// stores them, and publishes one event per destination for live subscribers.
// Returns the number of forecasts written.
func (s *CrowdService) RefreshAll(ctx context.Context, horizonDays int) (int, error) {
	if horizonDays <= 0 {
		horizonDays = 7
	}

	dests, err := s.dests.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list destinations: %w", err)
	}

	from := truncateToDay(time.Now().UTC())
	var all []domain.CrowdForecast
	for _, dest := range dests {
		forecasts := ComputeForecasts(dest, from, horizonDays)
		all = append(all, forecasts...)

		if s.publisher != nil && len(forecasts) > 0 {
			// Today's forecast is the one live clients care about.
			_ = s.publisher.PublishCrowdForecast(ctx, &forecasts[0])
		}
	}

	if err := s.forecasts.UpsertBatch(ctx, all); err != nil {
		return 0, fmt.Errorf("store forecasts: %w", err)
	}

	for _, f := range all {
		metrics.ForecastsComputed.WithLabelValues(f.Level).Inc()
	}
	return len(all), nil
}

// ComputeForecasts derives crowd levels for a destination from a fixed
// seasonality model: base popularity per destination, the October-March
// tourist season, the June-September monsoon dip, and weekend surges.
func ComputeForecasts(dest domain.Destination, from time.Time, days int) []domain.CrowdForecast {
	now := time.Now().UTC()
	out := make([]domain.CrowdForecast, 0, days)

	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		score := basePopularity(dest.ID)

		switch m := date.Month(); {
		case m >= time.October || m <= time.March:
			score += 0.20
		case m >= time.June && m <= time.September:
			score -= 0.10
		}
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			score += 0.15
		}
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}

		out = append(out, domain.CrowdForecast{
			DestinationID: dest.ID,
			Date:          date,
			Level:         levelFor(score),
			Score:         score,
			GeneratedAt:   now,
		})
	}
	return out
}

// basePopularity maps a destination ID onto a stable 0.25-0.55 band.
func basePopularity(id string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return 0.25 + float64(h.Sum32()%100)/100*0.30
}

func levelFor(score float64) string {
	switch {
	case score < 0.4:
		return "low"
	case score < 0.7:
		return "moderate"
	default:
		return "high"
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
