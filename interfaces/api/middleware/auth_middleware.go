package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasklist-api/domain/services"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

// Protected validates the bearer token, checks that its session has not been
// revoked, and threads the resolved identity into the request context.
func Protected(userService services.UserService, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		// token ใช้ได้ แต่ session อาจถูก revoke ไปแล้ว (logout)
		if _, err := userService.ResolveSession(c.UserContext(), userCtx.TokenID, userCtx.ID); err != nil {
			if errors.Is(err, services.ErrSessionRevoked) || errors.Is(err, services.ErrNotFound) {
				return utils.UnauthorizedResponse(c, "Session expired or revoked")
			}
			logger.ErrorContext(c.UserContext(), "Session resolution failed", "error", err)
			return utils.InternalServerErrorResponse(c)
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
