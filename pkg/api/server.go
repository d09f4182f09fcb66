package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railscout/railscout/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/rail")

	group.Get("version", routes.APIVersion)

	routes.ConnectionsRouter(group.Group("/connections"))

	routes.PlannerRouter(group.Group("/planner"))

	routes.BookingsRouter(group.Group("/bookings"))

	routes.StatsRouter(group.Group("/stats"))

	return webApp.Listen(listen)
}
