package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// NewLogger logs every request with the fields that matter for a search API:
// the query string carries the actual search parameters, so it is logged
// alongside the path.
func NewLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		err := c.Next()

		msg := "HTTP Request"
		if err != nil {
			msg = err.Error()
		}

		code := c.Response().StatusCode()

		event := log.Info()
		switch {
		case code >= fiber.StatusInternalServerError:
			event = log.Error()
		case code >= fiber.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Str("ip", c.IP()).
			Dur("latency", time.Since(startTime)).
			Msg(msg)

		return nil
	}
}
