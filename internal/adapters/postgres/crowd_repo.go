package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ramana119/yatra/internal/core/domain"
)

// CrowdForecastRepo implements ports.CrowdForecastRepository with pgx.
type CrowdForecastRepo struct {
	db *DB
}

// NewCrowdForecastRepo creates a new CrowdForecastRepo.
func NewCrowdForecastRepo(db *DB) *CrowdForecastRepo {
	return &CrowdForecastRepo{db: db}
}

// UpsertBatch writes forecasts using pgx.Batch, replacing any existing
// forecast for the same destination and date.
func (r *CrowdForecastRepo) UpsertBatch(ctx context.Context, forecasts []domain.CrowdForecast) error {
	batch := &pgx.Batch{}
	for _, f := range forecasts {
		batch.Queue(`
			INSERT INTO crowd_forecasts (destination_id, forecast_date, level, score, generated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (destination_id, forecast_date) DO UPDATE
			SET level = EXCLUDED.level, score = EXCLUDED.score,
			    generated_at = EXCLUDED.generated_at
		`, f.DestinationID, f.Date, f.Level, f.Score, f.GeneratedAt)
	}
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range forecasts {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	return nil
}

// ListByDestination returns forecasts for the coming days, ordered by date.
func (r *CrowdForecastRepo) ListByDestination(ctx context.Context, destinationID string, from time.Time, days int) ([]domain.CrowdForecast, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT destination_id, forecast_date, level, score, generated_at
		FROM crowd_forecasts
		WHERE destination_id = $1
		  AND forecast_date >= $2 AND forecast_date < $3
		ORDER BY forecast_date
	`, destinationID, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forecasts []domain.CrowdForecast
	for rows.Next() {
		var f domain.CrowdForecast
		if err := rows.Scan(&f.DestinationID, &f.Date, &f.Level, &f.Score, &f.GeneratedAt); err != nil {
			return nil, err
		}
		forecasts = append(forecasts, f)
	}
	return forecasts, rows.Err()
}
