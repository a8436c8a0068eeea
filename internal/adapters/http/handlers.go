package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ListDestinationsHandler returns the destination catalog.
func ListDestinationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dests, err := deps.Destinations.List(c.Context())
		if err != nil {
			return errInternal(c, err.Error())
		}

		// Apply offset/limit pagination on the full list
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 200 {
			limit = 100
		}

		total := len(dests)
		if offset >= total {
			dests = nil
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			dests = dests[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: dests, Pagination: pg})
	}
}

// NearbyDestinationsHandler returns destinations within a radius of a point.
func NearbyDestinationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat := c.QueryFloat("lat", 0)
		lng := c.QueryFloat("lng", 0)
		radius := c.QueryFloat("radius", 100000)
		limit := c.QueryInt("limit", 20)

		if lat == 0 || lng == 0 {
			return errBadRequest(c, "lat and lng are required")
		}
		if radius <= 0 || radius > 500000 {
			return errBadRequest(c, "radius must be between 1 and 500000 meters")
		}
		if limit <= 0 || limit > 50 {
			limit = 20
		}

		dests, err := deps.Destinations.FindNearby(c.Context(), lat, lng, radius, limit)
		if err != nil {
			return errInternal(c, err.Error())
		}

		c.Set("Cache-Control", "public, max-age=300")
		return c.JSON(dests)
	}
}

// SearchDestinationsHandler performs fuzzy search on destination names.
func SearchDestinationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > 200 {
			return errBadRequest(c, "query too long (max 200 characters)")
		}
		limit := c.QueryInt("limit", 20)
		if limit <= 0 || limit > 50 {
			limit = 20
		}

		dests, err := deps.Destinations.Search(c.Context(), query, limit)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(dests)
	}
}

// BatchDestinationsHandler returns multiple destinations by ID, in request order.
func BatchDestinationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids := c.Query("ids", "")
		if ids == "" {
			return errBadRequest(c, "ids query parameter is required (comma-separated)")
		}

		var destIDs []string
		for _, id := range strings.Split(ids, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				destIDs = append(destIDs, trimmed)
			}
		}

		if len(destIDs) == 0 {
			return errBadRequest(c, "at least one destination ID is required")
		}
		if len(destIDs) > 100 {
			return errBadRequest(c, "maximum 100 destination IDs allowed")
		}

		dests, err := deps.Destinations.GetByIDs(c.Context(), destIDs)
		if err != nil {
			return errInternal(c, err.Error())
		}

		c.Set("Cache-Control", "public, max-age=300")
		return c.JSON(dests)
	}
}

// GetDestinationHandler returns a single destination by ID.
func GetDestinationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "destination id is required")
		}
		dest, err := deps.Destinations.GetByID(c.Context(), id)
		if err != nil {
			return errNotFound(c, "destination not found")
		}
		return c.JSON(dest)
	}
}

// DestinationCrowdHandler returns crowd forecasts for the coming days.
func DestinationCrowdHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "destination id is required")
		}
		days := c.QueryInt("days", 7)

		forecasts, err := deps.Crowd.ForDestination(c.Context(), id, days)
		if err != nil {
			return errNotFound(c, "destination not found")
		}

		c.Set("Cache-Control", "public, max-age=1800")
		return c.JSON(fiber.Map{
			"destination_id": id,
			"forecasts":      forecasts,
		})
	}
}
