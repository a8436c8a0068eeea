package geospatial

import (
	"math"
	"testing"
)

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 27.1767, Lng: 78.0081}, {Lat: 26.9239, Lng: 75.8267}}, // Agra / Jaipur
		{{Lat: 28.6139, Lng: 77.2090}, {Lat: 19.0760, Lng: 72.8777}}, // Delhi / Mumbai
		{{Lat: 15.2993, Lng: 74.1240}, {Lat: 9.9312, Lng: 76.2673}},  // Goa / Kochi
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestDistanceKm_Identity(t *testing.T) {
	p := Point{Lat: 27.1767, Lng: 78.0081}
	if d := DistanceKm(p, p); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceKm_AgraJaipur(t *testing.T) {
	agra := Point{Lat: 27.1767, Lng: 78.0081}
	jaipur := Point{Lat: 26.9239, Lng: 75.8267}

	d := DistanceKm(agra, jaipur)
	// Known value: roughly 230-240 km.
	if d < 220 || d > 250 {
		t.Errorf("Agra-Jaipur distance = %f km, want ~230-240", d)
	}
}

func TestBoundingBox_ContainsCenter(t *testing.T) {
	minLat, minLng, maxLat, maxLng := BoundingBox(26.9124, 75.7873, 5000)
	if minLat >= 26.9124 || maxLat <= 26.9124 {
		t.Errorf("lat bounds [%f, %f] do not bracket center", minLat, maxLat)
	}
	if minLng >= 75.7873 || maxLng <= 75.7873 {
		t.Errorf("lng bounds [%f, %f] do not bracket center", minLng, maxLng)
	}
}

// The box is used as a prefilter for radius queries, so every point within
// the radius must fall inside it.
func TestBoundingBox_CoversRadius(t *testing.T) {
	center := Point{Lat: 26.9124, Lng: 75.7873}
	const radiusMeters = 50000.0

	minLat, minLng, maxLat, maxLng := BoundingBox(center.Lat, center.Lng, radiusMeters)

	for deg := 0; deg < 360; deg += 30 {
		rad := float64(deg) * math.Pi / 180
		p := Point{
			Lat: center.Lat + (radiusMeters/111320.0)*math.Sin(rad)*0.999,
			Lng: center.Lng + (radiusMeters/(111320.0*math.Cos(toRad(center.Lat))))*math.Cos(rad)*0.999,
		}
		if DistanceKm(center, p) > radiusMeters/1000 {
			continue
		}
		if p.Lat < minLat || p.Lat > maxLat || p.Lng < minLng || p.Lng > maxLng {
			t.Errorf("point at bearing %d within radius falls outside box", deg)
		}
	}
}
