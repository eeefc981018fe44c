package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const operationKey = "operation"

// Operation tags the request with the store operation its route runs. The
// name matches the operation label on the store metrics.
func Operation(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(operationKey, name)
		return c.Next()
	}
}

// OperationName returns the name set by Operation, or ""
func OperationName(c *fiber.Ctx) string {
	op, _ := c.Locals(operationKey).(string)
	return op
}

// StructuredLogger tags every request with a uuid and logs it once the handler returns
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the error handler has not written the response yet
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("ip", c.IP()),
		}

		if op := OperationName(c); op != "" {
			logAttrs = append(logAttrs, slog.String("operation", op))
		}
		if query := string(c.Request().URI().QueryString()); query != "" {
			logAttrs = append(logAttrs, slog.String("query", query))
		}
		if err != nil {
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
		}

		level, msg := levelFor(status, err)
		logger.LogAttrs(c.Context(), level, msg, logAttrs...)

		return err
	}
}

func levelFor(status int, err error) (slog.Level, string) {
	switch {
	case err != nil && status >= 500:
		return slog.LevelError, "request error"
	case status >= 500:
		return slog.LevelError, "server error"
	case status >= 400:
		return slog.LevelWarn, "client error"
	default:
		return slog.LevelInfo, "request completed"
	}
}
