package routes

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railscout/railscout/pkg/dataaggregator"
	"github.com/railscout/railscout/pkg/dataaggregator/query"
	"github.com/railscout/railscout/pkg/search"
	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/transforms"
)

func ConnectionsRouter(router fiber.Router) {
	router.Get("/", getConnections)
}

func getConnections(c *fiber.Ctx) error {
	searchQuery, err := searchQueryFromRequest(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	itineraries, err := dataaggregator.Lookup[[]timetable.Itinerary](query.Connections{
		Query: searchQuery,
	})
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithItineraries(c, itineraries)
}

// searchQueryFromRequest maps the shared filter query parameters onto a
// search query. Validation happens later, inside the lookup.
func searchQueryFromRequest(c *fiber.Ctx) (search.Query, error) {
	searchQuery := search.Query{
		FromCity: c.Query("from"),
		ToCity:   c.Query("to"),

		DepartureAfter:  c.Query("departure_after"),
		DepartureBefore: c.Query("departure_before"),
		ArrivalAfter:    c.Query("arrival_after"),
		ArrivalBefore:   c.Query("arrival_before"),

		TrainType: c.Query("train_type"),

		PriceClass: search.PriceClass(strings.ToUpper(c.Query("price_class"))),

		SortBy:  search.SortKey(strings.ToUpper(c.Query("sort_by"))),
		SortDir: search.SortDirection(strings.ToUpper(c.Query("sort_dir"))),
	}

	if days := c.Query("days"); days != "" {
		searchQuery.Days = strings.Split(days, ",")
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		value, err := strconv.Atoi(maxPrice)
		if err != nil {
			return search.Query{}, err
		}
		searchQuery.MaxPrice = &value
	}

	return searchQuery, nil
}

func respondWithItineraries(c *fiber.Ctx, itineraries []timetable.Itinerary) error {
	brandings := map[string]*timetable.TrainTypeBranding{}
	for _, itinerary := range itineraries {
		for _, leg := range itinerary.Legs {
			branding := timetable.BrandingForTrainType(leg.Connection.TrainType)
			if _, seen := brandings[branding.Code]; seen {
				continue
			}

			transforms.Transform(branding)
			brandings[branding.Code] = branding
		}
	}

	itinerariesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, itineraries)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Itineraries",
		})
	}

	return c.JSON(fiber.Map{
		"itineraries": itinerariesReduced,
		"train_types": brandings,
	})
}
