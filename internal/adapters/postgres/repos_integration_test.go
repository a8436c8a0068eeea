//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/ramana119/yatra/internal/adapters/postgres"
	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/pkg/config"
)

// setupTestDB connects to the database from the test environment config.
func setupTestDB(t *testing.T) *postgres.DB {
	cfg, err := config.Load("yatra-test")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func seedTestDestinations(t *testing.T, db *postgres.DB) []domain.Destination {
	dests := []domain.Destination{
		{ID: "it-jaipur", Slug: "it-jaipur", Name: "Jaipur IT", State: "Rajasthan",
			Location: domain.GeoPoint{Lat: 26.9239, Lng: 75.8267}},
		{ID: "it-agra", Slug: "it-agra", Name: "Agra IT", State: "Uttar Pradesh",
			Location: domain.GeoPoint{Lat: 27.1767, Lng: 78.0081}},
		{ID: "it-kochi", Slug: "it-kochi", Name: "Kochi IT", State: "Kerala",
			Location: domain.GeoPoint{Lat: 9.9312, Lng: 76.2673}},
	}

	repo := postgres.NewDestinationRepo(db)
	if err := repo.UpsertBatch(context.Background(), dests); err != nil {
		t.Fatalf("seed destinations: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(),
			`DELETE FROM destinations WHERE id LIKE 'it-%'`)
	})
	return dests
}

func TestDestinationRepo_GetByID(t *testing.T) {
	db := setupTestDB(t)
	seedTestDestinations(t, db)
	repo := postgres.NewDestinationRepo(db)

	dest, err := repo.GetByID(context.Background(), "it-jaipur")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if dest.Name != "Jaipur IT" {
		t.Errorf("expected Jaipur IT, got %s", dest.Name)
	}
	if dest.Location.Lat < 26.9 || dest.Location.Lat > 27.0 {
		t.Errorf("latitude did not round-trip: %f", dest.Location.Lat)
	}
}

func TestDestinationRepo_FindNearby(t *testing.T) {
	db := setupTestDB(t)
	seedTestDestinations(t, db)
	repo := postgres.NewDestinationRepo(db)

	// 300 km around Jaipur reaches Agra (~240 km) but not Kochi.
	dests, err := repo.FindNearby(context.Background(), 26.9239, 75.8267, 300000, 10)
	if err != nil {
		t.Fatalf("find nearby: %v", err)
	}

	ids := make(map[string]bool)
	for _, d := range dests {
		ids[d.ID] = true
		if d.Distance == nil {
			t.Errorf("%s missing computed distance", d.ID)
		}
	}
	if !ids["it-jaipur"] || !ids["it-agra"] {
		t.Errorf("expected it-jaipur and it-agra within 300 km, got %v", ids)
	}
	if ids["it-kochi"] {
		t.Error("it-kochi is over 2000 km away and must be excluded")
	}
}

func TestDestinationRepo_Search(t *testing.T) {
	db := setupTestDB(t)
	seedTestDestinations(t, db)
	repo := postgres.NewDestinationRepo(db)

	dests, err := repo.Search(context.Background(), "jaipur", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	found := false
	for _, d := range dests {
		if d.ID == "it-jaipur" {
			found = true
		}
	}
	if !found {
		t.Error("expected it-jaipur in search results for 'jaipur'")
	}
}

func TestCrowdForecastRepo_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedTestDestinations(t, db)
	repo := postgres.NewCrowdForecastRepo(db)

	from := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	forecasts := []domain.CrowdForecast{
		{DestinationID: "it-jaipur", Date: from, Level: "high", Score: 0.8, GeneratedAt: time.Now().UTC()},
		{DestinationID: "it-jaipur", Date: from.AddDate(0, 0, 1), Level: "moderate", Score: 0.5, GeneratedAt: time.Now().UTC()},
	}
	if err := repo.UpsertBatch(context.Background(), forecasts); err != nil {
		t.Fatalf("upsert forecasts: %v", err)
	}

	got, err := repo.ListByDestination(context.Background(), "it-jaipur", from, 7)
	if err != nil {
		t.Fatalf("list forecasts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 forecasts, got %d", len(got))
	}
	if got[0].Level != "high" || got[0].Score != 0.8 {
		t.Errorf("first forecast did not round-trip: %+v", got[0])
	}

	// Upserting the same day again replaces, not duplicates.
	forecasts[0].Level = "moderate"
	if err := repo.UpsertBatch(context.Background(), forecasts[:1]); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	got, err = repo.ListByDestination(context.Background(), "it-jaipur", from, 7)
	if err != nil {
		t.Fatalf("list forecasts: %v", err)
	}
	if len(got) != 2 || got[0].Level != "moderate" {
		t.Errorf("expected replaced forecast, got %+v", got)
	}
}
