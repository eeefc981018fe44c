package handlers

import (
	"tesla-notes/app"

	"github.com/gofiber/fiber/v2"
)

// Export returns every memo and plan in one snapshot
func Export(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshot, err := a.ExportService.Export()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to export data", err)
		}

		return success(c, fiber.Map{"export": snapshot})
	}
}
