// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	assetRoute "sekolahku_backend/internals/features/assets/route"
	campusRoute "sekolahku_backend/internals/features/campus/route"
	libraryRoute "sekolahku_backend/internals/features/library/route"
	procurementRoute "sekolahku_backend/internals/features/procurement/route"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	featuresMiddleware "sekolahku_backend/internals/middlewares/features"
)

// SetupRoutes menyusun seluruh route:
// /api/public → katalog tanpa login; /api/a → back office (JWT + role).
func SetupRoutes(app *fiber.App, db *gorm.DB, bs *blob.Service) {
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group (tanpa auth)...")
	public := app.Group("/api/public")

	// ===================== ADMIN (BACK OFFICE) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + role)...")
	authed := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middlewares.WriteRateLimiter(),
	)

	admin := authed.Group("", featuresMiddleware.RequireRoles(constants.AdminAndAbove...))
	librarian := authed.Group("", featuresMiddleware.RequireRoles(constants.LibrarianAndAbove...))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Campus routes...")
	campusRoute.CampusAdminRoutes(admin, db, bs)

	log.Println("[INFO] Mounting Asset routes...")
	assetRoute.AssetAdminRoutes(admin, db, bs)

	log.Println("[INFO] Mounting Procurement routes...")
	procurementRoute.ProcurementAdminRoutes(admin, db, bs)

	log.Println("[INFO] Mounting Library routes...")
	libraryRoute.LibraryAdminRoutes(librarian, db, bs)
	libraryRoute.LibraryPublicRoutes(public, db, bs)
}
