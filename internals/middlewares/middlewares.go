package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"novaeclass_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global (urutan penting: recovery paling luar)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
