package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"newshub_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared middleware stack. Order matters:
// request-id first so the logger and error handler can see it.
func SetupMiddlewares(app *fiber.App) {
	app.Use(logger.RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
