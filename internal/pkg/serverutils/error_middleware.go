package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-chat-be/internal/pkg/logger"
)

// NewErrorHandler returns the fiber error handler. Client mistakes (bad JSON,
// failed validation) come back as 4xx with the original message; anything else
// is logged with its stack context and masked behind a generic 500 so internal
// details never reach the widget.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code < fiber.StatusInternalServerError {
				return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, nil))
			}
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("Internal server error", nil))
	}
}
