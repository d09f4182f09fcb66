package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railscout/railscout/pkg/booking"
	"github.com/railscout/railscout/pkg/dataaggregator"
	"github.com/railscout/railscout/pkg/dataaggregator/query"
	"github.com/railscout/railscout/pkg/search"
	"github.com/railscout/railscout/pkg/timetable"
)

func BookingsRouter(router fiber.Router) {
	router.Post("/", createBooking)
	router.Get("/:identifier", getBooking)
	router.Post("/:identifier/confirm", confirmBooking)
	router.Delete("/:identifier", cancelBooking)
}

type createBookingRequest struct {
	PassengerName string
	PriceClass    string
	Itinerary     timetable.Itinerary
}

func createBooking(c *fiber.Ctx) error {
	var request createBookingRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid booking request body",
		})
	}

	reservation, err := booking.CreateReservation(
		c.Context(),
		request.PassengerName,
		search.PriceClass(request.PriceClass),
		request.Itinerary,
	)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithReservation(c, reservation)
}

func getBooking(c *fiber.Ctx) error {
	reservation, err := dataaggregator.Lookup[*booking.Reservation](query.Reservation{
		ReservationID: c.Params("identifier"),
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithReservation(c, reservation)
}

func confirmBooking(c *fiber.Ctx) error {
	ticket, err := booking.ConfirmReservation(c.Context(), c.Params("identifier"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(ticket)
}

func cancelBooking(c *fiber.Ctx) error {
	err := booking.CancelReservation(c.Context(), c.Params("identifier"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func respondWithReservation(c *fiber.Ctx, reservation *booking.Reservation) error {
	reservationReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, reservation)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Reservation",
		})
	}

	return c.JSON(reservationReduced)
}
