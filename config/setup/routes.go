package setup

import (
	"tesla-notes/app"
	"tesla-notes/handlers"
	"tesla-notes/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// RegisterRoutes registers all application routes. Store routes are tagged
// with the operation name their service records in the metrics.
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	op := middleware.Operation

	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/metrics", adaptor.HTTPHandler(application.Metrics.Handler()))

	api := fiberApp.Group("/api")
	api.Get("/time", handlers.ServerTime)
	api.Get("/export", op("export"), handlers.Export(application))

	// Fixed segments go before :id
	memos := api.Group("/memos")
	memos.Post("/", op("create_memo"), handlers.CreateMemo(application))
	memos.Get("/", op("list_memos"), handlers.ListMemos(application))
	memos.Get("/search", op("search_memos"), handlers.SearchMemos(application))
	memos.Get("/date/:date", op("list_memos_by_date"), handlers.MemosByDate(application))
	memos.Get("/:id", op("get_memo"), handlers.GetMemo(application))
	memos.Put("/:id", op("update_memo"), handlers.UpdateMemo(application))
	memos.Delete("/:id", op("delete_memo"), handlers.DeleteMemo(application))
	memos.Post("/:id/toggle", op("toggle_memo_status"), handlers.ToggleMemo(application))

	plans := api.Group("/plans")
	plans.Post("/", op("create_plan"), handlers.CreatePlan(application))
	plans.Get("/date/:date", op("list_plans_by_date"), handlers.PlansByDate(application))
	plans.Get("/:id", op("get_plan"), handlers.GetPlan(application))
	plans.Put("/:id", op("update_plan"), handlers.UpdatePlan(application))
	plans.Delete("/:id", op("delete_plan"), handlers.DeletePlan(application))
	plans.Post("/:id/toggle", op("toggle_plan_completion"), handlers.TogglePlan(application))
}
