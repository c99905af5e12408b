// internals/features/library/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/library/controller"
	"sekolahku_backend/internals/helpers/blob"
)

// LibraryPublicRoutes: katalog buku read-only tanpa login.
// Buku di sampah tidak pernah tampil di jalur ini.
func LibraryPublicRoutes(r fiber.Router, db *gorm.DB, bs *blob.Service) {
	book := ctr.NewBookController(db, bs)
	g := r.Group("/books")
	g.Get("/", book.PublicList)
	g.Get("/:id", book.PublicShow)
}
