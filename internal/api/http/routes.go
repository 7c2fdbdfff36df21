package httpapi

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/travel-planner/internal/trip"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, pipeline *trip.Pipeline) {
	app.Post("/addTrip", func(c *fiber.Ctx) error {
		var req trip.Request
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "startDate must be formatted as 2006-01-02")
		}
		end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "endDate must be formatted as 2006-01-02")
		}

		enriched, err := pipeline.Enrich(c.UserContext(), req.Destination, start, end)
		if err != nil {
			// The caller gets no detail about which provider failed.
			log.Printf("addTrip failed for %q: %v", req.Destination, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to add trip",
			})
		}

		return c.JSON(enriched)
	})

	app.Post("/forecast", func(c *fiber.Ctx) error {
		var req struct {
			Destination string `json:"destination" validate:"required"`
			Date        string `json:"date" validate:"required"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		raw, err := pipeline.DayForecast(c.UserContext(), req.Destination, req.Date)
		if err != nil {
			log.Printf("forecast failed for %q: %v", req.Destination, err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error fetching weather forecast")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if raw == nil {
			// No forecast day matched the requested date.
			return c.SendString("null")
		}
		return c.Send(raw)
	})
}
