package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/stats"
)

func StatsRouter(router fiber.Router) {
	router.Get("/", getNetworkStats)
}

func getNetworkStats(c *fiber.Ctx) error {
	networkStats := stats.CalculateNetworkStats(networkindex.Published())

	statsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, networkStats)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce NetworkStats",
		})
	}

	return c.JSON(statsReduced)
}
