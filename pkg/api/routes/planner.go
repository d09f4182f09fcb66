package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/railscout/railscout/pkg/dataaggregator"
	"github.com/railscout/railscout/pkg/dataaggregator/query"
	"github.com/railscout/railscout/pkg/search"
	"github.com/railscout/railscout/pkg/timetable"
)

var planCache *search.PlanCache

// SetupPlanCache enables redis caching of planner results. Without it every
// request runs a live search.
func SetupPlanCache() {
	planCache = &search.PlanCache{}
	planCache.Setup()
}

func PlannerRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getPlanBetweenCities)
}

func getPlanBetweenCities(c *fiber.Ctx) error {
	maxTransfers, err := strconv.Atoi(c.Query("max_transfers", "2"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter max_transfers should be an integer",
		})
	}

	maxResults, err := strconv.Atoi(c.Query("max_results", "10"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter max_results should be an integer",
		})
	}

	searchQuery, err := searchQueryFromRequest(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	searchQuery.FromCity = c.Params("origin")
	searchQuery.ToCity = c.Params("destination")
	searchQuery.Normalize()

	planOptions := search.PlanOptions{
		MaxTransfers: maxTransfers,
		MaxResults:   maxResults,
	}

	if planCache != nil {
		if itineraries := planCache.Get(searchQuery, planOptions); itineraries != nil {
			return respondWithItineraries(c, itineraries)
		}
	}

	itineraries, err := dataaggregator.Lookup[[]timetable.Itinerary](query.Plan{
		Query:        searchQuery,
		MaxTransfers: maxTransfers,
		MaxResults:   maxResults,
	})
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if planCache != nil {
		planCache.Set(searchQuery, planOptions, itineraries)
	}

	return respondWithItineraries(c, itineraries)
}
