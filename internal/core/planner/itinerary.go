package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/ramana119/yatra/internal/core/domain"
)

const dayTripDeparture = "08:00"

// Generate allocates calendar days to destinations and returns an ordered
// day-by-day plan. Day 1 falls on startDate and every subsequent entry
// advances the date by exactly one day, transit days included.
//
// Generation never exceeds requestedDays: destinations that do not fit are
// silently truncated, not reported as an error. An empty destination list
// yields an empty itinerary.
func (e *Engine) Generate(dests []domain.Destination, mode domain.TransportMode, requestedDays int, startDate time.Time, style domain.TravelStyle) []domain.ItineraryDay {
	if len(dests) == 0 || requestedDays < 1 {
		return nil
	}

	if style == domain.StyleBaseHotel {
		return e.generateBaseHotel(dests, requestedDays, startDate)
	}
	return e.generateMobile(dests, mode, requestedDays, startDate)
}

// generateBaseHotel keeps lodging fixed at the first destination and cycles
// day excursions through the full list. Lodging never changes, so no transit
// days are inserted.
func (e *Engine) generateBaseHotel(dests []domain.Destination, requestedDays int, startDate time.Time) []domain.ItineraryDay {
	base := dests[0]
	days := make([]domain.ItineraryDay, 0, requestedDays)

	for d := 0; d < requestedDays; d++ {
		visited := dests[d%len(dests)]
		day := domain.ItineraryDay{
			Day:             d + 1,
			Date:            startDate.AddDate(0, 0, d),
			DestinationID:   visited.ID,
			DestinationName: visited.Name,
		}
		if visited.ID == base.ID {
			day.Activities = []string{
				"Explore " + base.Name,
				"Evening at leisure near the hotel",
			}
		} else {
			day.Activities = []string{
				fmt.Sprintf("Day trip to %s from %s", visited.Name, base.Name),
				"Return to the base hotel by evening",
			}
			day.DepartureTime = dayTripDeparture
			day.ArrivalTime = "20:00"
		}
		days = append(days, day)
	}
	return days
}

// generateMobile moves lodging with the traveler, distributing the day budget
// as evenly as possible and inserting one transit day between stops when the
// budget has room for it. Transit days are skipped entirely on tight budgets
// so that every destination still gets its visit days.
func (e *Engine) generateMobile(dests []domain.Destination, mode domain.TransportMode, requestedDays int, startDate time.Time) []domain.ItineraryDay {
	n := len(dests)

	withTransits := requestedDays >= 2*n-1
	visitBudget := requestedDays
	if withTransits {
		visitBudget = requestedDays - (n - 1)
	}

	daysPer := visitBudget / n
	if daysPer < 1 {
		daysPer = 1
	}
	extra := visitBudget % n

	days := make([]domain.ItineraryDay, 0, requestedDays)
	day := 1

	for i, dest := range dests {
		alloc := daysPer
		if i < extra {
			alloc++
		}

		for k := 0; k < alloc; k++ {
			if day > requestedDays {
				return days
			}
			var activities []string
			if k == 0 {
				activities = []string{"Check in and explore " + dest.Name}
			} else {
				activities = []string{"Continue exploring " + dest.Name}
			}
			days = append(days, domain.ItineraryDay{
				Day:             day,
				Date:            startDate.AddDate(0, 0, day-1),
				DestinationID:   dest.ID,
				DestinationName: dest.Name,
				Activities:      activities,
			})
			day++
		}

		if withTransits && i < n-1 && day <= requestedDays {
			next := dests[i+1]
			hours := distanceKm(dest, next) / Profile(mode).SpeedKmh
			days = append(days, domain.ItineraryDay{
				Day:             day,
				Date:            startDate.AddDate(0, 0, day-1),
				DestinationID:   next.ID,
				DestinationName: next.Name,
				Activities: []string{
					fmt.Sprintf("Travel to %s, about %.1f h by %s", next.Name, hours, mode),
				},
				IsTransitDay:  true,
				DepartureTime: dayTripDeparture,
				ArrivalTime:   clockAfter(8, hours),
			})
			day++
		}
	}
	return days
}

// clockAfter formats the wall-clock time hours after startHour, wrapping past
// midnight.
func clockAfter(startHour, hours float64) string {
	minutes := int(math.Round((startHour+hours)*60)) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
