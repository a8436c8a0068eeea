package planner_test

import (
	"fmt"

	"github.com/ramana119/yatra/internal/core/domain"
)

// Well-known catalog entries used across tests.
var (
	agra   = domain.Destination{ID: "agra", Name: "Agra", Location: domain.GeoPoint{Lat: 27.1767, Lng: 78.0081}}
	jaipur = domain.Destination{ID: "jaipur", Name: "Jaipur", Location: domain.GeoPoint{Lat: 26.9239, Lng: 75.8267}}
	delhi  = domain.Destination{ID: "delhi", Name: "Delhi", Location: domain.GeoPoint{Lat: 28.6139, Lng: 77.2090}}
	mumbai = domain.Destination{ID: "mumbai", Name: "Mumbai", Location: domain.GeoPoint{Lat: 19.0760, Lng: 72.8777}}
)

// destsAlongMeridian builds n synthetic destinations spaced exactly
// spacingKm apart along the prime meridian, where haversine distance equals
// arc length and leg distances come out as round numbers.
func destsAlongMeridian(n int, spacingKm float64) []domain.Destination {
	const kmPerDegree = 111.19493
	out := make([]domain.Destination, n)
	for i := range out {
		out[i] = domain.Destination{
			ID:   fmt.Sprintf("d%d", i+1),
			Name: fmt.Sprintf("Stop %d", i+1),
			Location: domain.GeoPoint{
				Lat: float64(i) * spacingKm / kmPerDegree,
				Lng: 0,
			},
		}
	}
	return out
}
