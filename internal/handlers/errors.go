package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/models"
)

// ErrorHandler renders every handler error as {"detail": "..."}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case models.IsClientError(err):
			code = fiber.StatusBadRequest
		}

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("❌ Request failed", fields...)
		} else {
			log.Warn("⚠️  Request rejected", fields...)
		}

		return c.Status(code).JSON(models.ErrorResponse{Detail: err.Error()})
	}
}
