package usecases_test

import (
	"context"
	"testing"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/usecases"
)

func TestDestinationService_List_CachesResult(t *testing.T) {
	calls := 0
	repo := &mockDestinationRepo{
		listFn: func(ctx context.Context) ([]domain.Destination, error) {
			calls++
			return []domain.Destination{
				{ID: "agra", Name: "Agra", Location: domain.GeoPoint{Lat: 27.1767, Lng: 78.0081}},
				{ID: "jaipur", Name: "Jaipur", Location: domain.GeoPoint{Lat: 26.9239, Lng: 75.8267}},
			}, nil
		},
	}

	svc := usecases.NewDestinationService(repo, newMockCache())

	for i := 0; i < 3; i++ {
		dests, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dests) != 2 {
			t.Fatalf("expected 2 destinations, got %d", len(dests))
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 repo call after caching, got %d", calls)
	}
}

func TestDestinationService_FindNearby_ClampLimit(t *testing.T) {
	called := false
	repo := &mockDestinationRepo{
		findNearbyFn: func(ctx context.Context, lat, lng, radius float64, limit int) ([]domain.Destination, error) {
			called = true
			if limit != 50 {
				t.Errorf("expected limit clamped to 50, got %d", limit)
			}
			return nil, nil
		},
	}

	svc := usecases.NewDestinationService(repo, nil)
	_, _ = svc.FindNearby(context.Background(), 27.0, 78.0, 5000, 999)
	if !called {
		t.Error("repo was not called")
	}
}

func TestDestinationService_Search_EmptyQuery(t *testing.T) {
	svc := usecases.NewDestinationService(&mockDestinationRepo{}, nil)
	_, err := svc.Search(context.Background(), "", 10)
	if err == nil {
		t.Error("expected error for empty query")
	}
}

func TestDestinationService_Search_Success(t *testing.T) {
	repo := &mockDestinationRepo{
		searchFn: func(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
			if query != "taj" {
				t.Errorf("expected query 'taj', got '%s'", query)
			}
			return []domain.Destination{{ID: "agra", Name: "Agra"}}, nil
		},
	}

	svc := usecases.NewDestinationService(repo, nil)
	dests, err := svc.Search(context.Background(), "taj", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(dests))
	}
}

func TestDestinationService_GetByID(t *testing.T) {
	repo := &mockDestinationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Destination, error) {
			return &domain.Destination{ID: id, Name: "Agra"}, nil
		},
	}

	svc := usecases.NewDestinationService(repo, nil)
	dest, err := svc.GetByID(context.Background(), "agra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.ID != "agra" {
		t.Errorf("expected id agra, got %s", dest.ID)
	}
}

func TestDestinationService_GetByIDs_PreservesOrderAndDrops(t *testing.T) {
	repo := &mockDestinationRepo{
		getByIDsFn: func(ctx context.Context, ids []string) ([]domain.Destination, error) {
			// Repo answers out of order and misses one ID.
			return []domain.Destination{
				{ID: "jaipur", Name: "Jaipur"},
				{ID: "agra", Name: "Agra"},
			}, nil
		},
	}

	svc := usecases.NewDestinationService(repo, nil)
	dests, err := svc.GetByIDs(context.Background(), []string{"agra", "nowhere", "jaipur"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(dests))
	}
	if dests[0].ID != "agra" || dests[1].ID != "jaipur" {
		t.Errorf("expected request order [agra jaipur], got [%s %s]", dests[0].ID, dests[1].ID)
	}
}
