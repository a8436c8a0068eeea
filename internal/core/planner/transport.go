package planner

import "github.com/ramana119/yatra/internal/core/domain"

// ModeProfile is the fixed attribute set of a transport mode.
type ModeProfile struct {
	SpeedKmh              float64 `json:"speed_kmh"`
	CostPerKm             float64 `json:"cost_per_km"` // rupees
	BoardingOverheadHours float64 `json:"boarding_overhead_hours"`
	SupportsOvernight     bool    `json:"supports_overnight"`
}

// modeOrder fixes the evaluation order everywhere a mode is picked by
// iteration, keeping results deterministic.
var modeOrder = []domain.TransportMode{
	domain.ModeBus,
	domain.ModeTrain,
	domain.ModeFlight,
	domain.ModeCar,
}

var modeProfiles = map[domain.TransportMode]ModeProfile{
	domain.ModeBus:    {SpeedKmh: 45, CostPerKm: 1.5, BoardingOverheadHours: 0, SupportsOvernight: true},
	domain.ModeTrain:  {SpeedKmh: 60, CostPerKm: 2.0, BoardingOverheadHours: 0, SupportsOvernight: true},
	domain.ModeFlight: {SpeedKmh: 500, CostPerKm: 6.0, BoardingOverheadHours: 1.5, SupportsOvernight: false},
	domain.ModeCar:    {SpeedKmh: 50, CostPerKm: 3.0, BoardingOverheadHours: 0, SupportsOvernight: false},
}

// Profile returns the fixed attributes of a mode. Unknown modes degrade to
// the car profile rather than erroring; callers are expected to validate.
func Profile(mode domain.TransportMode) ModeProfile {
	if p, ok := modeProfiles[mode]; ok {
		return p
	}
	return modeProfiles[domain.ModeCar]
}

// Modes returns the supported transport modes in evaluation order.
func Modes() []domain.TransportMode {
	out := make([]domain.TransportMode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// Profiles returns the full transport table keyed by mode.
func Profiles() map[domain.TransportMode]ModeProfile {
	out := make(map[domain.TransportMode]ModeProfile, len(modeProfiles))
	for m, p := range modeProfiles {
		out[m] = p
	}
	return out
}
