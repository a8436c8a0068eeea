package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/planner"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/core/usecases"
)

func catalogRepo() *mockDestinationRepo {
	catalog := map[string]domain.Destination{
		"agra":   {ID: "agra", Name: "Agra", Location: domain.GeoPoint{Lat: 27.1767, Lng: 78.0081}},
		"jaipur": {ID: "jaipur", Name: "Jaipur", Location: domain.GeoPoint{Lat: 26.9239, Lng: 75.8267}},
		"delhi":  {ID: "delhi", Name: "Delhi", Location: domain.GeoPoint{Lat: 28.6139, Lng: 77.2090}},
	}
	return &mockDestinationRepo{
		getByIDsFn: func(ctx context.Context, ids []string) ([]domain.Destination, error) {
			var out []domain.Destination
			for _, id := range ids {
				if d, ok := catalog[id]; ok {
					out = append(out, d)
				}
			}
			return out, nil
		},
	}
}

func newPlannerService(pub *mockPublisher) *usecases.PlannerService {
	engine := planner.New(planner.DefaultConfig())
	var publisher ports.EventPublisher
	if pub != nil {
		publisher = pub
	}
	return usecases.NewPlannerService(catalogRepo(), newMockCache(), publisher, engine)
}

func TestPlannerService_CheckFeasibility(t *testing.T) {
	pub := &mockPublisher{}
	svc := newPlannerService(pub)

	res, err := svc.CheckFeasibility(context.Background(), []string{"delhi", "agra", "jaipur"}, domain.ModeCar, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Feasible {
		t.Errorf("expected 10 days to cover a three-stop trip, got daysNeeded=%d", res.DaysNeeded)
	}
	if len(res.Breakdown) != 3 {
		t.Errorf("expected breakdown of 3 legs, got %d", len(res.Breakdown))
	}
	if len(res.SkippedIDs) != 0 {
		t.Errorf("expected no skipped IDs, got %v", res.SkippedIDs)
	}

	if len(pub.planEvents) != 1 {
		t.Fatalf("expected 1 plan event, got %d", len(pub.planEvents))
	}
	ev := pub.planEvents[0]
	if ev.Operation != "feasibility" {
		t.Errorf("expected operation feasibility, got %s", ev.Operation)
	}
	if ev.Feasible == nil || !*ev.Feasible {
		t.Error("expected event to carry feasible=true")
	}
}

func TestPlannerService_CheckFeasibility_InvalidMode(t *testing.T) {
	svc := newPlannerService(nil)
	_, err := svc.CheckFeasibility(context.Background(), []string{"agra"}, "teleport", 3)
	if err == nil {
		t.Error("expected error for unsupported transport type")
	}
}

func TestPlannerService_UnknownIDsAreSkipped(t *testing.T) {
	svc := newPlannerService(nil)

	res, err := svc.CheckFeasibility(context.Background(), []string{"agra", "atlantis", "jaipur"}, domain.ModeTrain, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.SkippedIDs) != 1 || res.SkippedIDs[0] != "atlantis" {
		t.Errorf("expected skipped [atlantis], got %v", res.SkippedIDs)
	}
	// The plan is computed over the two resolved stops only.
	if len(res.Breakdown) != 2 {
		t.Errorf("expected breakdown of 2 legs, got %d", len(res.Breakdown))
	}
}

func TestPlannerService_DistanceMatrix(t *testing.T) {
	svc := newPlannerService(nil)

	legs, skipped, err := svc.DistanceMatrix(context.Background(), []string{"delhi", "agra", "jaipur"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("expected no skipped IDs, got %v", skipped)
	}
	if len(legs) != 2 {
		t.Fatalf("expected 2 consecutive legs, got %d", len(legs))
	}
	if legs[0].FromID != "delhi" || legs[0].ToID != "agra" {
		t.Errorf("expected first leg delhi->agra, got %s->%s", legs[0].FromID, legs[0].ToID)
	}

	pairs, _, err := svc.DistanceMatrix(context.Background(), []string{"delhi", "agra", "jaipur"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 3 {
		t.Errorf("expected 3 pairwise legs, got %d", len(pairs))
	}
}

func TestPlannerService_DistanceMatrix_CachesResult(t *testing.T) {
	calls := 0
	repo := catalogRepo()
	inner := repo.getByIDsFn
	repo.getByIDsFn = func(ctx context.Context, ids []string) ([]domain.Destination, error) {
		calls++
		return inner(ctx, ids)
	}
	svc := usecases.NewPlannerService(repo, newMockCache(), nil, planner.New(planner.DefaultConfig()))

	for i := 0; i < 3; i++ {
		if _, _, err := svc.DistanceMatrix(context.Background(), []string{"agra", "jaipur"}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 repo call after caching, got %d", calls)
	}
}

func TestPlannerService_Recommend(t *testing.T) {
	pub := &mockPublisher{}
	svc := newPlannerService(pub)

	rec, err := svc.Recommend(context.Background(), []string{"delhi", "agra", "jaipur"}, 7, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.RecommendedType.Valid() {
		t.Errorf("expected a valid recommended mode, got %q", rec.RecommendedType)
	}
	if len(rec.PremiumAdvantages) == 0 {
		t.Error("expected premium advantages for a premium user")
	}
	if len(pub.planEvents) != 1 || pub.planEvents[0].Operation != "recommendation" {
		t.Errorf("expected one recommendation event, got %+v", pub.planEvents)
	}
}

func TestPlannerService_GenerateItinerary(t *testing.T) {
	pub := &mockPublisher{}
	svc := newPlannerService(pub)
	start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	it, err := svc.GenerateItinerary(context.Background(), []string{"delhi", "agra", "jaipur"}, domain.ModeCar, 5, start, domain.StyleMobile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.PlanID == "" {
		t.Error("expected a generated plan ID")
	}
	if it.Style != domain.StyleMobile {
		t.Errorf("expected style mobile, got %s", it.Style)
	}
	if len(it.Days) == 0 || len(it.Days) > 5 {
		t.Errorf("expected 1-5 itinerary days, got %d", len(it.Days))
	}
	if len(pub.planEvents) != 1 || pub.planEvents[0].Operation != "itinerary" {
		t.Errorf("expected one itinerary event, got %+v", pub.planEvents)
	}
}

func TestPlannerService_GenerateItinerary_Validation(t *testing.T) {
	svc := newPlannerService(nil)
	start := time.Now()

	if _, err := svc.GenerateItinerary(context.Background(), []string{"agra"}, "teleport", 3, start, domain.StyleMobile); err == nil {
		t.Error("expected error for unsupported transport type")
	}
	if _, err := svc.GenerateItinerary(context.Background(), []string{"agra"}, domain.ModeCar, 0, start, domain.StyleMobile); err == nil {
		t.Error("expected error for zero days")
	}
	if _, err := svc.GenerateItinerary(context.Background(), []string{"agra"}, domain.ModeCar, 3, start, "luxury"); err == nil {
		t.Error("expected error for unsupported style")
	}

	// Empty style defaults to mobile.
	it, err := svc.GenerateItinerary(context.Background(), []string{"agra"}, domain.ModeCar, 3, start, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Style != domain.StyleMobile {
		t.Errorf("expected default style mobile, got %s", it.Style)
	}
}

func TestPlannerService_TransportModes(t *testing.T) {
	svc := newPlannerService(nil)

	profiles := svc.TransportModes()
	if len(profiles) != 4 {
		t.Fatalf("expected 4 transport modes, got %d", len(profiles))
	}
	if profiles[domain.ModeFlight].BoardingOverheadHours != 1.5 {
		t.Errorf("expected 1.5h flight boarding overhead, got %v", profiles[domain.ModeFlight].BoardingOverheadHours)
	}
}
