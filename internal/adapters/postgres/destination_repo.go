package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/pkg/geospatial"
)

// DestinationRepo implements ports.DestinationRepository with pgx.
type DestinationRepo struct {
	db *DB
}

// NewDestinationRepo creates a new DestinationRepo.
func NewDestinationRepo(db *DB) *DestinationRepo {
	return &DestinationRepo{db: db}
}

const destinationColumns = `
	id, slug, name, COALESCE(state, ''),
	ST_Y(location::geometry) as lat,
	ST_X(location::geometry) as lng,
	COALESCE(metadata, '{}'), created_at`

// Upsert inserts or updates a single destination.
func (r *DestinationRepo) Upsert(ctx context.Context, d *domain.Destination) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO destinations (id, slug, name, state, location, metadata)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7)
		ON CONFLICT (id) DO UPDATE
		SET slug = EXCLUDED.slug, name = EXCLUDED.name, state = EXCLUDED.state,
		    location = EXCLUDED.location, metadata = EXCLUDED.metadata
	`, d.ID, d.Slug, d.Name, d.State, d.Location.Lng, d.Location.Lat, d.Metadata)
	return err
}

// UpsertBatch inserts many destinations using pgx.Batch.
func (r *DestinationRepo) UpsertBatch(ctx context.Context, dests []domain.Destination) error {
	batch := &pgx.Batch{}
	for _, d := range dests {
		batch.Queue(`
			INSERT INTO destinations (id, slug, name, state, location, metadata)
			VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7)
			ON CONFLICT (id) DO UPDATE
			SET slug = EXCLUDED.slug, name = EXCLUDED.name, state = EXCLUDED.state,
			    location = EXCLUDED.location, metadata = EXCLUDED.metadata
		`, d.ID, d.Slug, d.Name, d.State, d.Location.Lng, d.Location.Lat, d.Metadata)
	}
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range dests {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	return nil
}

// GetByID returns a destination by ID.
func (r *DestinationRepo) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	var d domain.Destination
	err := r.db.Pool.QueryRow(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations WHERE id = $1
	`, id).Scan(
		&d.ID, &d.Slug, &d.Name, &d.State,
		&d.Location.Lat, &d.Location.Lng,
		&d.Metadata, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByIDs returns multiple destinations by ID, in arbitrary order.
func (r *DestinationRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDestinations(rows)
}

// List returns the full catalog ordered by name.
func (r *DestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDestinations(rows)
}

// FindNearby returns destinations within radiusMeters using PostGIS ST_DWithin.
// A planar bounding box narrows the candidate set before the geodesic check.
func (r *DestinationRepo) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]domain.Destination, error) {
	minLat, minLng, maxLat, maxLng := geospatial.BoundingBox(lat, lng, radiusMeters)

	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+destinationColumns+`,
		       ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
		FROM destinations
		WHERE ST_Y(location::geometry) BETWEEN $5 AND $6
		  AND ST_X(location::geometry) BETWEEN $7 AND $8
		  AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance
		LIMIT $4
	`, lng, lat, radiusMeters, limit, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		var d domain.Destination
		var dist float64
		if err := rows.Scan(
			&d.ID, &d.Slug, &d.Name, &d.State,
			&d.Location.Lat, &d.Location.Lng,
			&d.Metadata, &d.CreatedAt,
			&dist,
		); err != nil {
			return nil, err
		}
		d.Distance = &dist
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

// Search performs fuzzy + full-text search on destination names.
func (r *DestinationRepo) Search(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+destinationColumns+`,
		       similarity(name, $1) as sim
		FROM destinations
		WHERE name_vector @@ plainto_tsquery('english', $1)
		   OR name %> $1
		ORDER BY sim DESC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		var d domain.Destination
		var sim float64
		if err := rows.Scan(
			&d.ID, &d.Slug, &d.Name, &d.State,
			&d.Location.Lat, &d.Location.Lng,
			&d.Metadata, &d.CreatedAt,
			&sim,
		); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

func scanDestinations(rows pgx.Rows) ([]domain.Destination, error) {
	var dests []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(
			&d.ID, &d.Slug, &d.Name, &d.State,
			&d.Location.Lat, &d.Location.Lng,
			&d.Metadata, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}
