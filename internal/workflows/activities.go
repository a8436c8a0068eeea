package workflows

import (
	"context"
	"fmt"

	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/core/usecases"
)

// ForecastActivities holds the activity implementations for the forecast
// refresh workflow.
type ForecastActivities struct {
	CrowdService *usecases.CrowdService
	Destinations ports.DestinationRepository
}

// CountDestinations returns the catalog size. A zero count lets the workflow
// skip the refresh instead of writing an empty batch.
func (a *ForecastActivities) CountDestinations(ctx context.Context) (int, error) {
	dests, err := a.Destinations.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list destinations: %w", err)
	}
	return len(dests), nil
}

// RefreshForecasts recomputes, stores, and publishes forecasts for the whole
// catalog. Returns the number of forecasts written.
func (a *ForecastActivities) RefreshForecasts(ctx context.Context, horizonDays int) (int, error) {
	n, err := a.CrowdService.RefreshAll(ctx, horizonDays)
	if err != nil {
		return 0, fmt.Errorf("refresh forecasts: %w", err)
	}
	return n, nil
}
