package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ramana119/yatra/internal/adapters/pdf"
	"github.com/ramana119/yatra/internal/core/domain"
)

// planRequest is the shared request body for planner endpoints. Fields not
// used by an endpoint are simply ignored.
type planRequest struct {
	DestinationIDs []string `json:"destination_ids"`
	TransportType  string   `json:"transport_type"`
	NumDays        int      `json:"num_days"`
	StartDate      string   `json:"start_date"` // YYYY-MM-DD
	TravelStyle    string   `json:"travel_style"`
	IsPremium      bool     `json:"is_premium"`
	AllPairs       bool     `json:"all_pairs"`
}

func parsePlanRequest(c *fiber.Ctx) (*planRequest, error) {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fmt.Errorf("invalid request body")
	}
	// An empty destination list is a valid zero-length trip, not an error.
	if len(req.DestinationIDs) > 50 {
		return nil, fmt.Errorf("maximum 50 destinations per plan")
	}
	return &req, nil
}

func (r *planRequest) startDate() (time.Time, error) {
	if r.StartDate == "" {
		return time.Now().UTC().AddDate(0, 0, 1), nil
	}
	return time.Parse("2006-01-02", r.StartDate)
}

// TransportModesHandler returns the static per-mode attribute table.
func TransportModesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "public, max-age=86400")
		return c.JSON(fiber.Map{"modes": deps.Planner.TransportModes()})
	}
}

// DistancesHandler returns leg distances for an ordered destination list.
// POST /v1/planner/distances {"destination_ids":[...], "all_pairs":false}
func DistancesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parsePlanRequest(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		legs, skipped, err := deps.Planner.DistanceMatrix(c.Context(), req.DestinationIDs, req.AllPairs)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(fiber.Map{
			"legs":        legs,
			"skipped_ids": skipped,
		})
	}
}

// FeasibilityHandler checks whether a day budget covers an ordered trip.
// POST /v1/planner/feasibility {"destination_ids":[...], "transport_type":"car", "num_days":5}
func FeasibilityHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parsePlanRequest(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		result, err := deps.Planner.CheckFeasibility(c.Context(), req.DestinationIDs, domain.TransportMode(req.TransportType), req.NumDays)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		return c.JSON(result)
	}
}

// RecommendationHandler picks the best transport mode for a trip.
// POST /v1/planner/recommendation {"destination_ids":[...], "num_days":5, "is_premium":true}
func RecommendationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parsePlanRequest(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		if req.NumDays < 1 {
			return errBadRequest(c, "num_days must be at least 1")
		}

		rec, err := deps.Planner.Recommend(c.Context(), req.DestinationIDs, req.NumDays, req.IsPremium)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(rec)
	}
}

// ItineraryHandler generates a day-by-day plan.
// POST /v1/planner/itinerary {"destination_ids":[...], "transport_type":"car",
// "num_days":5, "start_date":"2026-11-02", "travel_style":"mobile"}
func ItineraryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		it, err := generateItinerary(c, deps)
		if err != nil {
			return err
		}
		return c.JSON(it)
	}
}

// ItineraryPDFHandler generates an itinerary and renders it as a PDF download.
func ItineraryPDFHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		it, err := generateItinerary(c, deps)
		if err != nil {
			return err
		}

		data, err := pdf.RenderItinerary(it)
		if err != nil {
			return errInternal(c, err.Error())
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `attachment; filename="itinerary-`+it.PlanID+`.pdf"`)
		return c.Send(data)
	}
}

// generateItinerary parses the plan request and runs the generator; it writes
// the error response itself so the two itinerary handlers share validation.
func generateItinerary(c *fiber.Ctx, deps *Dependencies) (*domain.Itinerary, error) {
	req, err := parsePlanRequest(c)
	if err != nil {
		return nil, errBadRequest(c, err.Error())
	}

	start, err := req.startDate()
	if err != nil {
		return nil, errBadRequest(c, "start_date must be YYYY-MM-DD")
	}

	it, err := deps.Planner.GenerateItinerary(
		c.Context(),
		req.DestinationIDs,
		domain.TransportMode(req.TransportType),
		req.NumDays,
		start,
		domain.TravelStyle(req.TravelStyle),
	)
	if err != nil {
		return nil, errUnprocessable(c, err.Error())
	}
	return it, nil
}
