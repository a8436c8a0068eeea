package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/ramana119/yatra/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lng": &graphql.Field{Type: graphql.Float},
		},
	})

	destinationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Destination",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.String},
			"slug":     &graphql.Field{Type: graphql.String},
			"name":     &graphql.Field{Type: graphql.String},
			"state":    &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: geoPointType},
			"distance": &graphql.Field{Type: graphql.Float},
		},
	})

	legRequirementType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LegRequirement",
		Fields: graphql.Fields{
			"destination_id":       &graphql.Field{Type: graphql.String},
			"destination_name":     &graphql.Field{Type: graphql.String},
			"days_needed":          &graphql.Field{Type: graphql.Int},
			"travel_hours_to_next": &graphql.Field{Type: graphql.Float},
			"travel_days_to_next":  &graphql.Field{Type: graphql.Int},
		},
	})

	feasibilityType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FeasibilityResult",
		Fields: graphql.Fields{
			"feasible":           &graphql.Field{Type: graphql.Boolean},
			"days_needed":        &graphql.Field{Type: graphql.Int},
			"days_short":         &graphql.Field{Type: graphql.Int},
			"total_distance_km":  &graphql.Field{Type: graphql.Float},
			"total_travel_hours": &graphql.Field{Type: graphql.Float},
			"breakdown":          &graphql.Field{Type: graphql.NewList(legRequirementType)},
			"skipped_ids":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	recommendationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TransportRecommendation",
		Fields: graphql.Fields{
			"recommended_type":        &graphql.Field{Type: graphql.String},
			"alternative_type":        &graphql.Field{Type: graphql.String},
			"reasoning":               &graphql.Field{Type: graphql.String},
			"total_distance_km":       &graphql.Field{Type: graphql.Float},
			"total_travel_time_hours": &graphql.Field{Type: graphql.Float},
			"time_for_sightseeing":    &graphql.Field{Type: graphql.Float},
			"is_realistic":            &graphql.Field{Type: graphql.Boolean},
			"premium_advantages":      &graphql.Field{Type: graphql.NewList(graphql.String)},
			"skipped_ids":             &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	idListArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))}

	toStrings := func(raw interface{}) []string {
		items, _ := raw.([]interface{})
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"destinations": &graphql.Field{
				Type:        graphql.NewList(destinationType),
				Description: "List the destination catalog",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Destinations.List(p.Context)
				},
			},
			"destination": &graphql.Field{
				Type:        destinationType,
				Description: "Get a destination by ID",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Destinations.GetByID(p.Context, p.Args["id"].(string))
				},
			},
			"searchDestinations": &graphql.Field{
				Type:        graphql.NewList(destinationType),
				Description: "Search destinations by name (fuzzy matching)",
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Destinations.Search(p.Context, p.Args["query"].(string), p.Args["limit"].(int))
				},
			},
			"destinationsNearby": &graphql.Field{
				Type:        graphql.NewList(destinationType),
				Description: "Find destinations near a location",
				Args: graphql.FieldConfigArgument{
					"lat":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lng":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"radius": &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: 100000.0},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Destinations.FindNearby(
						p.Context,
						p.Args["lat"].(float64),
						p.Args["lng"].(float64),
						p.Args["radius"].(float64),
						p.Args["limit"].(int),
					)
				},
			},
			"feasibility": &graphql.Field{
				Type:        feasibilityType,
				Description: "Check whether a day budget covers an ordered trip",
				Args: graphql.FieldConfigArgument{
					"destination_ids": idListArg,
					"transport_type":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"num_days":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Planner.CheckFeasibility(
						p.Context,
						toStrings(p.Args["destination_ids"]),
						domain.TransportMode(p.Args["transport_type"].(string)),
						p.Args["num_days"].(int),
					)
				},
			},
			"recommendation": &graphql.Field{
				Type:        recommendationType,
				Description: "Recommend a transport mode for an ordered trip",
				Args: graphql.FieldConfigArgument{
					"destination_ids": idListArg,
					"num_days":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"is_premium":      &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Planner.Recommend(
						p.Context,
						toStrings(p.Args["destination_ids"]),
						p.Args["num_days"].(int),
						p.Args["is_premium"].(bool),
					)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
