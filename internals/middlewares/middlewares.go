package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	loggermw "sekolahku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu logging, lalu sisanya.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(requestid.New())
	app.Use(loggermw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
	app.Use(LocaleMiddleware())
}
