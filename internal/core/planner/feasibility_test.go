package planner_test

import (
	"math"
	"testing"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/planner"
)

func TestCheckFeasibility_EmptyTrip(t *testing.T) {
	eng := planner.New(planner.DefaultConfig())

	for _, days := range []int{0, 1, 7, 30} {
		res := eng.CheckFeasibility(nil, domain.ModeTrain, days)
		if !res.Feasible {
			t.Errorf("empty trip with %d days should be feasible", days)
		}
		if res.DaysNeeded != 0 || res.DaysShort != 0 || res.TotalDistanceKm != 0 {
			t.Errorf("empty trip should be all-zero, got %+v", res)
		}
	}
}

func TestCheckFeasibility_SingleDestination(t *testing.T) {
	eng := planner.New(planner.DefaultConfig())

	for _, mode := range planner.Modes() {
		res := eng.CheckFeasibility([]domain.Destination{agra}, mode, 1)
		if !res.Feasible {
			t.Errorf("single destination by %s with 1 day should be feasible", mode)
		}
		if res.DaysNeeded != 1 {
			t.Errorf("single destination daysNeeded = %d, want 1", res.DaysNeeded)
		}
		if res.TotalTravelHours != 0 || res.TotalDistanceKm != 0 {
			t.Errorf("single destination should have zero travel, got %+v", res)
		}
		if len(res.Breakdown) != 1 || res.Breakdown[0].TravelDaysNext != 0 {
			t.Errorf("single destination breakdown = %+v", res.Breakdown)
		}
	}

	// Not enough days for even one stop.
	res := eng.CheckFeasibility([]domain.Destination{agra}, domain.ModeCar, 0)
	if res.Feasible || res.DaysShort != 1 {
		t.Errorf("0-day single-stop trip: feasible=%v daysShort=%d, want false/1", res.Feasible, res.DaysShort)
	}
}

func TestCheckFeasibility_ThreeStopsByCar(t *testing.T) {
	// Three stops 300 km apart: 600 km total at 50 km/h is 12 h of driving.
	// Each 6 h leg rounds up to one travel day, so the trip needs
	// 3 sightseeing + 2 travel = 5 days.
	eng := planner.New(planner.DefaultConfig())
	dests := destsAlongMeridian(3, 300)

	res := eng.CheckFeasibility(dests, domain.ModeCar, 2)

	if math.Abs(res.TotalDistanceKm-600) > 1 {
		t.Errorf("total distance = %f, want ~600", res.TotalDistanceKm)
	}
	if math.Abs(res.TotalTravelHours-12) > 0.1 {
		t.Errorf("total travel hours = %f, want ~12", res.TotalTravelHours)
	}
	if res.DaysNeeded != 5 {
		t.Errorf("daysNeeded = %d, want 5", res.DaysNeeded)
	}
	if res.Feasible {
		t.Error("trip should be infeasible in 2 days")
	}
	if res.DaysShort != 3 {
		t.Errorf("daysShort = %d, want 3", res.DaysShort)
	}

	if len(res.Breakdown) != 3 {
		t.Fatalf("breakdown entries = %d, want 3", len(res.Breakdown))
	}
	last := res.Breakdown[2]
	if last.TravelHoursNext != 0 || last.TravelDaysNext != 0 {
		t.Errorf("final stop should have no outgoing leg, got %+v", last)
	}
}

func TestCheckFeasibility_FlightBoardingOverhead(t *testing.T) {
	eng := planner.New(planner.DefaultConfig())
	dests := destsAlongMeridian(2, 500)

	res := eng.CheckFeasibility(dests, domain.ModeFlight, 7)
	want := 500.0/500 + 1.5
	if math.Abs(res.TotalTravelHours-want) > 0.01 {
		t.Errorf("flight leg hours = %f, want %f", res.TotalTravelHours, want)
	}
}

func TestCheckFeasibility_Consistency(t *testing.T) {
	// feasible == (daysNeeded <= requestedDays) and
	// daysShort == max(0, daysNeeded - requestedDays) must always hold.
	eng := planner.New(planner.DefaultConfig())
	lists := [][]domain.Destination{
		nil,
		{agra},
		{agra, jaipur},
		{delhi, agra, jaipur, mumbai},
		destsAlongMeridian(6, 450),
	}

	for _, dests := range lists {
		for _, mode := range planner.Modes() {
			for days := 0; days <= 12; days++ {
				res := eng.CheckFeasibility(dests, mode, days)
				if res.Feasible != (res.DaysNeeded <= days) {
					t.Errorf("n=%d mode=%s days=%d: feasible=%v but daysNeeded=%d",
						len(dests), mode, days, res.Feasible, res.DaysNeeded)
				}
				wantShort := res.DaysNeeded - days
				if wantShort < 0 {
					wantShort = 0
				}
				if res.DaysShort != wantShort {
					t.Errorf("n=%d mode=%s days=%d: daysShort=%d, want %d",
						len(dests), mode, days, res.DaysShort, wantShort)
				}
			}
		}
	}
}

func TestCheckFeasibility_MonotonicInTravelCap(t *testing.T) {
	// Raising the daily travel cap can never increase the days needed.
	dests := destsAlongMeridian(4, 400)

	prev := math.MaxInt32
	for capHours := 2.0; capHours <= 16; capHours++ {
		eng := planner.New(planner.Config{MaxTravelHoursPerDay: capHours})
		res := eng.CheckFeasibility(dests, domain.ModeBus, 10)
		if res.DaysNeeded > prev {
			t.Errorf("daysNeeded rose from %d to %d when cap grew to %.0f h", prev, res.DaysNeeded, capHours)
		}
		prev = res.DaysNeeded
	}
}

func TestCheckFeasibility_TourismHoursRoundUp(t *testing.T) {
	// 12 h of sightseeing per stop over 8 h days rounds up to 2 days per stop.
	eng := planner.New(planner.Config{TourismHoursPerDestination: 12})
	dests := destsAlongMeridian(2, 100)

	res := eng.CheckFeasibility(dests, domain.ModeCar, 10)
	// 2+2 sightseeing days plus one travel day for the 2 h leg.
	if res.DaysNeeded != 5 {
		t.Errorf("daysNeeded = %d, want 5", res.DaysNeeded)
	}
}
