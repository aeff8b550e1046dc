package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// allowOrigins - список через запятую; "*" отключает credentials.
func CORS(allowOrigins string) fiber.Handler {
	allowOrigins = strings.TrimSpace(allowOrigins)
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,HEAD,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,X-Request-ID",
		ExposeHeaders:    RequestIDHeader,
		AllowCredentials: allowOrigins != "*",
	})
}
