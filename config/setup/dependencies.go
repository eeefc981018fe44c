package setup

import (
	"log/slog"
	"tesla-notes/app"
	"tesla-notes/database"
	"tesla-notes/metrics"
)

// InitDatabase opens the SQLite database and creates the schema
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, metrics.New(), logger)
	logger.Debug("application initialized with dependency injection")

	return application
}

// Shutdown closes the database
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
