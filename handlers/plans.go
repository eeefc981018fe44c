package handlers

import (
	"tesla-notes/app"
	"tesla-notes/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePlan stores a new daily plan
func CreatePlan(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePlanRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		plan, err := a.PlanService.Create(req.PlanDate, req.Title, req.Description, req.Category, req.Priority)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create plan", err)
		}

		return created(c, fiber.Map{"plan": plan})
	}
}

// PlansByDate lists a day's plans, highest priority first
func PlansByDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, ok := dateParam(c)
		if !ok {
			return badRequest(c, "date must be a valid date in YYYY-MM-DD format")
		}

		plans, err := a.PlanService.ListByDate(date)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch plans", err)
		}

		return success(c, fiber.Map{"date": date, "plans": plans})
	}
}

func GetPlan(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid plan ID")
		}

		plan, err := a.PlanService.Get(id)
		if err != nil {
			return storeError(c, err, "Plan not found", "Failed to fetch plan")
		}

		return success(c, fiber.Map{"plan": plan})
	}
}

func UpdatePlan(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid plan ID")
		}

		var patch models.PlanPatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&patch); err != nil {
			return validationError(c, err)
		}

		plan, err := a.PlanService.Update(id, patch)
		if err != nil {
			return storeError(c, err, "Plan not found", "Failed to update plan")
		}

		return success(c, fiber.Map{"plan": plan})
	}
}

func DeletePlan(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid plan ID")
		}

		if err := a.PlanService.Delete(id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete plan", err)
		}

		return success(c, fiber.Map{"message": "Plan deleted successfully"})
	}
}

// TogglePlan flips completion and stamps or clears completed_ts
func TogglePlan(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid plan ID")
		}

		plan, err := a.PlanService.ToggleCompletion(id)
		if err != nil {
			return storeError(c, err, "Plan not found", "Failed to toggle plan")
		}

		return success(c, fiber.Map{"plan": plan})
	}
}
