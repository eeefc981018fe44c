package handlers

import (
	"tesla-notes/app"
	"tesla-notes/models"
	"tesla-notes/services"

	"github.com/gofiber/fiber/v2"
)

// CreateMemo stores a new memo
func CreateMemo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateMemoRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		memo, err := a.MemoService.Create(req.Content, req.Category, req.TargetDate)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create memo", err)
		}

		return created(c, fiber.Map{"memo": memo})
	}
}

// ListMemos returns a page of non-archived memos
func ListMemos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", services.DefaultLimit)
		offset := c.QueryInt("offset", 0)

		var category *string
		if value := c.Query("category"); value != "" {
			category = &value
		}

		memos, err := a.MemoService.List(limit, offset, category)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch memos", err)
		}

		return success(c, fiber.Map{"memos": memos})
	}
}

// GetMemo returns one memo by id
func GetMemo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid memo ID")
		}

		memo, err := a.MemoService.Get(id)
		if err != nil {
			return storeError(c, err, "Memo not found", "Failed to fetch memo")
		}

		return success(c, fiber.Map{"memo": memo})
	}
}

// UpdateMemo applies a partial update
func UpdateMemo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid memo ID")
		}

		var patch models.MemoPatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&patch); err != nil {
			return validationError(c, err)
		}

		memo, err := a.MemoService.Update(id, patch)
		if err != nil {
			return storeError(c, err, "Memo not found", "Failed to update memo")
		}

		return success(c, fiber.Map{"memo": memo})
	}
}

// DeleteMemo removes a memo; missing ids succeed
func DeleteMemo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid memo ID")
		}

		if err := a.MemoService.Delete(id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete memo", err)
		}

		return success(c, fiber.Map{"message": "Memo deleted successfully"})
	}
}

func SearchMemos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		memos, err := a.MemoService.Search(c.Query("q"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to search memos", err)
		}

		return success(c, fiber.Map{"memos": memos})
	}
}

func MemosByDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, ok := dateParam(c)
		if !ok {
			return badRequest(c, "date must be a valid date in YYYY-MM-DD format")
		}

		memos, err := a.MemoService.ListByDate(date)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch memos", err)
		}

		return success(c, fiber.Map{"date": date, "memos": memos})
	}
}

// ToggleMemo advances the completion status one step
func ToggleMemo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid memo ID")
		}

		memo, err := a.MemoService.ToggleStatus(id)
		if err != nil {
			return storeError(c, err, "Memo not found", "Failed to toggle memo")
		}

		return success(c, fiber.Map{"memo": memo})
	}
}
