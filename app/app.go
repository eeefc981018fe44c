package app

import (
	"log/slog"
	"tesla-notes/database"
	"tesla-notes/metrics"
	"tesla-notes/services"
	"tesla-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	MemoService   *services.MemoService
	PlanService   *services.PlanService
	ExportService *services.ExportService
	Guard         *services.Guard
	Metrics       *metrics.Metrics
	Validator     *validator.Validator
	Logger        *slog.Logger
}

// New wires the services over one repository and one shared guard
func New(repo *database.Repository, m *metrics.Metrics, logger *slog.Logger) *App {
	guard := services.NewGuard(m, logger)

	return &App{
		MemoService:   services.NewMemoService(repo, guard),
		PlanService:   services.NewPlanService(repo, guard),
		ExportService: services.NewExportService(repo, repo, guard),
		Guard:         guard,
		Metrics:       m,
		Validator:     validator.New(),
		Logger:        logger,
	}
}
