package setup

import (
	"errors"
	"log/slog"
	"tesla-notes/config"
	"tesla-notes/middleware"
	"tesla-notes/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp creates and configures a new Fiber application
func NewFiberApp(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "tesla-notes",
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: cfg.Env == "production",
		ErrorHandler:          CustomErrorHandler(logger),
		ReadBufferSize:        8192,
	})
}

// CustomErrorHandler turns errors returned by handlers into JSON. Store
// errors that escape a handler keep their meaning: ErrNotFound is a 404.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := statusFor(err)

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		level := slog.LevelError
		if code < fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Context(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"operation", middleware.OperationName(c),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}

func statusFor(err error) (int, string) {
	var e *fiber.Error
	switch {
	case errors.As(err, &e):
		return e.Code, e.Message
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, services.ErrGuardPoisoned):
		return fiber.StatusServiceUnavailable, "Store unavailable"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
