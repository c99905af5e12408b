// internals/features/library/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/library/controller"
	"sekolahku_backend/internals/helpers/blob"
)

// LibraryAdminRoutes: lemari, rak, buku, dan transaksi peminjaman.
func LibraryAdminRoutes(r fiber.Router, db *gorm.DB, bs *blob.Service) {
	bookcase := ctr.NewBookcaseController(db, bs)
	g := r.Group("/bookcases")
	g.Get("/", bookcase.List)
	g.Get("/form", bookcase.FormData)
	g.Post("/", bookcase.Create)
	g.Get("/:id", bookcase.Show)
	g.Get("/:id/edit", bookcase.EditData)
	g.Put("/:id", bookcase.Update)
	g.Delete("/:id", bookcase.Destroy)

	shelf := ctr.NewShelfController(db, bs)
	g = r.Group("/shelves")
	g.Get("/", shelf.List)
	g.Get("/form", shelf.FormData)
	g.Post("/", shelf.Create)
	g.Get("/:id", shelf.Show)
	g.Get("/:id/edit", shelf.EditData)
	g.Put("/:id", shelf.Update)
	g.Delete("/:id", shelf.Destroy)

	book := ctr.NewBookController(db, bs)
	g = r.Group("/books")
	g.Get("/", book.List)
	g.Get("/form", book.FormData)
	g.Post("/", book.Create)
	g.Get("/:id", book.Show)
	g.Get("/:id/edit", book.EditData)
	g.Put("/:id", book.Update)
	g.Delete("/:id", book.Destroy)
	g.Post("/:id/restore", book.Restore)

	loan := ctr.NewLoanController(db, bs)
	g = r.Group("/loans")
	g.Get("/", loan.List)
	g.Get("/form", loan.FormData)
	g.Post("/", loan.Create)
	g.Get("/:id", loan.Show)
	g.Get("/:id/edit", loan.EditData)
	g.Put("/:id", loan.Update)
	g.Delete("/:id", loan.Destroy)
}
