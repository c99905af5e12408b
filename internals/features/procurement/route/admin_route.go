// internals/features/procurement/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/procurement/controller"
	"sekolahku_backend/internals/helpers/blob"
)

// ProcurementAdminRoutes: pemasok dan purchase order.
func ProcurementAdminRoutes(r fiber.Router, db *gorm.DB, bs *blob.Service) {
	supplier := ctr.NewSupplierController(db, bs)
	g := r.Group("/suppliers")
	g.Get("/", supplier.List)
	g.Get("/form", supplier.FormData)
	g.Post("/", supplier.Create)
	g.Get("/:id", supplier.Show)
	g.Get("/:id/edit", supplier.EditData)
	g.Put("/:id", supplier.Update)
	g.Delete("/:id", supplier.Destroy)

	po := ctr.NewPurchaseOrderController(db, bs)
	g = r.Group("/purchase-orders")
	g.Get("/", po.List)
	g.Get("/form", po.FormData)
	g.Post("/", po.Create)
	g.Get("/:id", po.Show)
	g.Get("/:id/edit", po.EditData)
	g.Put("/:id", po.Update)
	g.Delete("/:id", po.Destroy)
}
