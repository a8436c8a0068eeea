package domain

import (
	"time"
)

// TransportMode is one of the four supported ways of moving between
// destinations.
type TransportMode string

const (
	ModeBus    TransportMode = "bus"
	ModeTrain  TransportMode = "train"
	ModeFlight TransportMode = "flight"
	ModeCar    TransportMode = "car"
)

// Valid reports whether the mode is one of the four known values.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeBus, ModeTrain, ModeFlight, ModeCar:
		return true
	}
	return false
}

// TravelStyle selects how an itinerary assigns lodging.
type TravelStyle string

const (
	// StyleBaseHotel keeps lodging fixed at the first destination while day
	// excursions visit the others.
	StyleBaseHotel TravelStyle = "base-hotel"
	// StyleMobile moves lodging with the traveler from stop to stop.
	StyleMobile TravelStyle = "mobile"
)

// Destination is a bookable place in the travel catalog.
type Destination struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	Name      string         `json:"name"`
	State     string         `json:"state,omitempty"`
	Location  GeoPoint       `json:"location"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Distance  *float64       `json:"distance,omitempty"` // computed field, meters
	CreatedAt time.Time      `json:"created_at"`
}

// LegDistance is the travel segment between two consecutive destinations in a
// caller-specified ordered list. Recomputed on demand, never persisted.
type LegDistance struct {
	FromID            string                    `json:"from_id"`
	ToID              string                    `json:"to_id"`
	FromName          string                    `json:"from_name"`
	ToName            string                    `json:"to_name"`
	DistanceKm        float64                   `json:"distance_km"`
	TravelHoursByMode map[TransportMode]float64 `json:"travel_hours_by_mode"`
}

// LegRequirement is the per-stop contribution to the day budget: sightseeing
// days at the stop plus travel to the next one. The final stop in a list has
// zero travel fields.
type LegRequirement struct {
	DestinationID   string  `json:"destination_id"`
	DestinationName string  `json:"destination_name"`
	DaysNeeded      int     `json:"days_needed"`
	TravelHoursNext float64 `json:"travel_hours_to_next"`
	TravelDaysNext  int     `json:"travel_days_to_next"`
}

// FeasibilityResult reports whether a day budget covers an ordered trip.
// Feasible holds iff DaysNeeded <= the requested days; an infeasible trip is
// data for the caller to render, not an error.
type FeasibilityResult struct {
	Feasible         bool             `json:"feasible"`
	DaysNeeded       int              `json:"days_needed"`
	DaysShort        int              `json:"days_short"`
	TotalDistanceKm  float64          `json:"total_distance_km"`
	TotalTravelHours float64          `json:"total_travel_hours"`
	Breakdown        []LegRequirement `json:"breakdown"`
	SkippedIDs       []string         `json:"skipped_ids,omitempty"` // IDs that did not resolve
}

// TransportRecommendation picks the best mode for a trip with a
// human-readable justification. IsRealistic is false when no mode leaves any
// sightseeing time, in which case the least-bad mode is still returned.
type TransportRecommendation struct {
	RecommendedType      TransportMode `json:"recommended_type"`
	AlternativeType      TransportMode `json:"alternative_type,omitempty"`
	Reasoning            string        `json:"reasoning"`
	TotalDistanceKm      float64       `json:"total_distance_km"`
	TotalTravelTimeHours float64       `json:"total_travel_time_hours"`
	TimeForSightseeing   float64       `json:"time_for_sightseeing"` // may be negative
	IsRealistic          bool          `json:"is_realistic"`
	PremiumAdvantages    []string      `json:"premium_advantages,omitempty"`
	SkippedIDs           []string      `json:"skipped_ids,omitempty"`
}

// ItineraryDay is one calendar day of a generated plan. Days are contiguous
// starting at 1; transit days carry no sightseeing activity.
type ItineraryDay struct {
	Day             int       `json:"day"`
	Date            time.Time `json:"date"`
	DestinationID   string    `json:"destination_id"`
	DestinationName string    `json:"destination_name"`
	Activities      []string  `json:"activities"`
	IsTransitDay    bool      `json:"is_transit_day"`
	DepartureTime   string    `json:"departure_time,omitempty"`
	ArrivalTime     string    `json:"arrival_time,omitempty"`
}

// Itinerary is a generated day-by-day plan with its request parameters echoed
// back for rendering.
type Itinerary struct {
	PlanID     string         `json:"plan_id"`
	Mode       TransportMode  `json:"transport_type"`
	Style      TravelStyle    `json:"travel_style"`
	Days       []ItineraryDay `json:"days"`
	SkippedIDs []string       `json:"skipped_ids,omitempty"`
}

// CrowdForecast is a predicted crowd level at a destination on a given date.
type CrowdForecast struct {
	DestinationID string    `json:"destination_id"`
	Date          time.Time `json:"date"`
	Level         string    `json:"level"` // low | moderate | high
	Score         float64   `json:"score"` // 0..1
	GeneratedAt   time.Time `json:"generated_at"`
}

// PlanEvent is published after a planner operation for downstream analytics.
type PlanEvent struct {
	PlanID         string        `json:"plan_id"`
	Operation      string        `json:"operation"` // feasibility | recommendation | itinerary
	DestinationIDs []string      `json:"destination_ids"`
	Mode           TransportMode `json:"mode,omitempty"`
	RequestedDays  int           `json:"requested_days"`
	Feasible       *bool         `json:"feasible,omitempty"`
	ComputedAt     time.Time     `json:"computed_at"`
}
