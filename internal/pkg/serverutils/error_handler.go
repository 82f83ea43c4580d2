package serverutils

import (
	"errors"

	"robotics-rag-be/internal/pkg/apperrors"
	"robotics-rag-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates domain errors into HTTP responses.
// Upstream provider failures become a generic 502 so provider-internal detail
// never reaches the caller.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case apperrors.IsNotFound(err):
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse("Content not found"))

		case errors.Is(err, apperrors.ErrInvalid):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(err.Error()))

		case apperrors.IsUpstreamUnavailable(err):
			sysLogger.Error("http", "Upstream provider failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse("Error processing query"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		sysLogger.Error("http", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("Internal server error"))
	}
}
