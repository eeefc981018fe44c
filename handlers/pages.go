package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func ServerTime(c *fiber.Ctx) error {
	timezone := c.Query("timezone", "UTC")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)

	return c.JSON(fiber.Map{
		"timestamp": now.Unix(),
		"timezone":  timezone,
		"iso":       now.Format(time.RFC3339),
		"date":      now.Format("2006-01-02"),
	})
}
