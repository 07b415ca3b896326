package middleware

import (
	"github.com/gofiber/fiber/v2"

	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

// ErrorHandler is the fiber-level fallback: anything a handler did not map
// itself becomes a structured error response with no internal detail leaked.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "status", code, "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
