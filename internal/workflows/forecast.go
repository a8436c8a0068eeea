package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ForecastRefreshInput is the input for the forecast refresh workflow.
type ForecastRefreshInput struct {
	HorizonDays int
}

// ForecastRefreshResult reports what a refresh run produced.
type ForecastRefreshResult struct {
	ForecastsWritten int
	Destinations     int
}

// ForecastRefreshWorkflow recomputes crowd forecasts for the whole catalog.
// It is started on a cron schedule by the forecaster worker; each run writes
// forecasts for the coming horizon and publishes today's level per
// destination.
func ForecastRefreshWorkflow(ctx workflow.Context, input ForecastRefreshInput) (ForecastRefreshResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting forecast refresh", "horizonDays", input.HorizonDays)

	actOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, actOpts)

	var result ForecastRefreshResult

	var count int
	if err := workflow.ExecuteActivity(ctx, "CountDestinations").Get(ctx, &count); err != nil {
		return result, err
	}
	if count == 0 {
		logger.Warn("No destinations in catalog, skipping refresh")
		return result, nil
	}
	result.Destinations = count

	var written int
	if err := workflow.ExecuteActivity(ctx, "RefreshForecasts", input.HorizonDays).Get(ctx, &written); err != nil {
		return result, err
	}
	result.ForecastsWritten = written

	logger.Info("Forecast refresh complete", "destinations", count, "written", written)
	return result, nil
}
