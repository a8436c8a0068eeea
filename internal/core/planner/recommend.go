package planner

import (
	"fmt"

	"github.com/ramana119/yatra/internal/core/domain"
)

// premiumAdvantages is static copy attached for premium travelers; nothing
// here is computed or personalized.
var premiumAdvantages = []string{
	"Route optimization can trim up to 15% of travel time",
	"Airport lounge access on flight legs",
	"Priority boarding and flexible rescheduling",
}

// Recommend evaluates all transport modes against the sightseeing budget and
// picks the best one with a human-readable justification. It always returns a
// recommendation: when no mode leaves any sightseeing time it falls back to
// the least-bad mode and marks the result unrealistic.
func (e *Engine) Recommend(dests []domain.Destination, requestedDays int, isPremium bool) domain.TransportRecommendation {
	if len(dests) <= 1 {
		rec := domain.TransportRecommendation{
			RecommendedType:    domain.ModeCar,
			Reasoning:          "A single destination is easiest by road. Hire a car or take a taxi.",
			TimeForSightseeing: float64(requestedDays) * e.cfg.SightseeingHoursPerDay,
			IsRealistic:        true,
		}
		if isPremium {
			rec.PremiumAdvantages = premiumAdvantages
		}
		return rec
	}

	totalKm := TotalDistanceKm(dests)
	legCount := len(dests) - 1
	budget := float64(requestedDays) * e.cfg.SightseeingHoursPerDay

	travelBy := make(map[domain.TransportMode]float64, len(modeOrder))
	slackBy := make(map[domain.TransportMode]float64, len(modeOrder))
	var viable []domain.TransportMode

	for _, m := range modeOrder {
		p := Profile(m)
		hours := totalKm/p.SpeedKmh + p.BoardingOverheadHours*float64(legCount)
		travelBy[m] = hours
		slackBy[m] = budget - hours
		if slackBy[m] > 0 {
			viable = append(viable, m)
		}
	}

	finish := func(rec domain.TransportRecommendation) domain.TransportRecommendation {
		rec.TotalDistanceKm = totalKm
		rec.TotalTravelTimeHours = travelBy[rec.RecommendedType]
		rec.TimeForSightseeing = slackBy[rec.RecommendedType]
		if isPremium {
			rec.PremiumAdvantages = premiumAdvantages
		}
		return rec
	}

	if len(viable) == 0 {
		// Least-bad fallback: the mode that wastes the fewest hours.
		best := modeOrder[0]
		for _, m := range modeOrder[1:] {
			if slackBy[m] > slackBy[best] {
				best = m
			}
		}
		return finish(domain.TransportRecommendation{
			RecommendedType: best,
			Reasoning: fmt.Sprintf(
				"This trip is too ambitious for %d days: even the fastest option leaves no sightseeing time. Add days or drop a destination.",
				requestedDays),
			IsRealistic: false,
		})
	}

	// Distance-tier policy: deliberately favors comfort and logistics over
	// raw speed, so a viable train beats a marginally faster flight.
	var (
		pick      domain.TransportMode
		alt       domain.TransportMode
		reasoning string
	)
	switch {
	case totalKm > 1500:
		pick, alt = domain.ModeFlight, domain.ModeTrain
		reasoning = fmt.Sprintf("At %.0f km across cities, flying is the only way to protect your sightseeing time.", totalKm)
	case totalKm > 800:
		pick, alt = domain.ModeTrain, domain.ModeFlight
		reasoning = fmt.Sprintf("A long haul of %.0f km: overnight trains cover it comfortably and save on hotel nights.", totalKm)
	case totalKm > 300:
		pick, alt = domain.ModeTrain, domain.ModeCar
		reasoning = fmt.Sprintf("Medium distances (%.0f km total): trains balance cost, comfort and time well here.", totalKm)
	default:
		pick, alt = domain.ModeCar, domain.ModeBus
		reasoning = fmt.Sprintf("Short hops (%.0f km total): a car gives you door-to-door flexibility.", totalKm)
	}

	if slackBy[pick] <= 0 {
		pick = viable[0]
		alt = ""
		if len(viable) > 1 {
			alt = viable[1]
		}
		reasoning = fmt.Sprintf("Adjusted for time constraints: %s is the option that keeps your schedule workable.", pick)
	}

	return finish(domain.TransportRecommendation{
		RecommendedType: pick,
		AlternativeType: alt,
		Reasoning:       reasoning,
		IsRealistic:     true,
	})
}
