package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CorsMiddleware(frontendURL string) fiber.Handler {
	allowOrigins := "http://localhost:3000"
	if frontendURL != "" && frontendURL != allowOrigins {
		allowOrigins += "," + frontendURL
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true, // เปิด credentials สำหรับ cookies/auth
	})
}
