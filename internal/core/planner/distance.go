package planner

import (
	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/pkg/geospatial"
)

// distanceKm is the great-circle distance between two destinations.
func distanceKm(a, b domain.Destination) float64 {
	return geospatial.DistanceKm(
		geospatial.Point{Lat: a.Location.Lat, Lng: a.Location.Lng},
		geospatial.Point{Lat: b.Location.Lat, Lng: b.Location.Lng},
	)
}

// travelHours is the time to cover distKm by mode, including the per-leg
// boarding overhead (non-zero only for flights).
func travelHours(distKm float64, mode domain.TransportMode) float64 {
	p := Profile(mode)
	return distKm/p.SpeedKmh + p.BoardingOverheadHours
}

func newLeg(from, to domain.Destination) domain.LegDistance {
	d := distanceKm(from, to)
	byMode := make(map[domain.TransportMode]float64, len(modeOrder))
	for _, m := range modeOrder {
		byMode[m] = travelHours(d, m)
	}
	return domain.LegDistance{
		FromID:            from.ID,
		ToID:              to.ID,
		FromName:          from.Name,
		ToName:            to.Name,
		DistanceKm:        d,
		TravelHoursByMode: byMode,
	}
}

// Legs returns the N-1 consecutive legs of an ordered destination list. The
// order is caller-controlled and never resorted; reordering changes results.
func Legs(dests []domain.Destination) []domain.LegDistance {
	if len(dests) < 2 {
		return nil
	}
	legs := make([]domain.LegDistance, 0, len(dests)-1)
	for i := 0; i < len(dests)-1; i++ {
		legs = append(legs, newLeg(dests[i], dests[i+1]))
	}
	return legs
}

// AllPairs returns the full pairwise distance matrix as a flat list of legs,
// i < j order. This is an auxiliary read-only query; feasibility and
// itinerary generation use consecutive legs only.
func AllPairs(dests []domain.Destination) []domain.LegDistance {
	if len(dests) < 2 {
		return nil
	}
	legs := make([]domain.LegDistance, 0, len(dests)*(len(dests)-1)/2)
	for i := 0; i < len(dests); i++ {
		for j := i + 1; j < len(dests); j++ {
			legs = append(legs, newLeg(dests[i], dests[j]))
		}
	}
	return legs
}

// TotalDistanceKm sums consecutive-leg distances only, never pairwise-all.
func TotalDistanceKm(dests []domain.Destination) float64 {
	var total float64
	for i := 0; i < len(dests)-1; i++ {
		total += distanceKm(dests[i], dests[i+1])
	}
	return total
}
