package planner

import (
	"math"

	"github.com/ramana119/yatra/internal/core/domain"
)

// CheckFeasibility computes whether requestedDays covers sightseeing plus
// travel for an ordered destination list under the given mode.
//
// Day counts always round up: a partial day consumes a full day, so the
// result never under-counts. Malformed input degrades to the empty or
// single-destination cases rather than erroring.
func (e *Engine) CheckFeasibility(dests []domain.Destination, mode domain.TransportMode, requestedDays int) domain.FeasibilityResult {
	if len(dests) == 0 {
		// A zero-length trip needs zero days and is always feasible.
		return domain.FeasibilityResult{Feasible: true}
	}

	if len(dests) == 1 {
		short := 1 - requestedDays
		if short < 0 {
			short = 0
		}
		return domain.FeasibilityResult{
			Feasible:   requestedDays >= 1,
			DaysNeeded: 1,
			DaysShort:  short,
			Breakdown: []domain.LegRequirement{{
				DestinationID:   dests[0].ID,
				DestinationName: dests[0].Name,
				DaysNeeded:      1,
			}},
		}
	}

	sightDays := int(math.Ceil(e.cfg.TourismHoursPerDestination / e.cfg.SightseeingHoursPerDay))
	if sightDays < 1 {
		sightDays = 1
	}

	var (
		breakdown  = make([]domain.LegRequirement, 0, len(dests))
		daysNeeded int
		totalKm    float64
		totalHours float64
	)

	for i, dest := range dests {
		req := domain.LegRequirement{
			DestinationID:   dest.ID,
			DestinationName: dest.Name,
			DaysNeeded:      sightDays,
		}

		// The final destination has no outgoing leg.
		if i < len(dests)-1 {
			d := distanceKm(dest, dests[i+1])
			hours := travelHours(d, mode)
			req.TravelHoursNext = hours
			req.TravelDaysNext = int(math.Ceil(hours / e.cfg.MaxTravelHoursPerDay))

			totalKm += d
			totalHours += hours
		}

		daysNeeded += req.DaysNeeded + req.TravelDaysNext
		breakdown = append(breakdown, req)
	}

	daysShort := daysNeeded - requestedDays
	if daysShort < 0 {
		daysShort = 0
	}

	return domain.FeasibilityResult{
		Feasible:         daysNeeded <= requestedDays,
		DaysNeeded:       daysNeeded,
		DaysShort:        daysShort,
		TotalDistanceKm:  totalKm,
		TotalTravelHours: totalHours,
		Breakdown:        breakdown,
	}
}
