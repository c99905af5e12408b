// internals/features/campus/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/campus/controller"
	"sekolahku_backend/internals/helpers/blob"
)

// CampusAdminRoutes: master data kampus/gedung/ruangan/departemen.
func CampusAdminRoutes(r fiber.Router, db *gorm.DB, bs *blob.Service) {
	campus := ctr.NewCampusController(db, bs)
	g := r.Group("/campuses")
	g.Get("/", campus.List)
	g.Get("/form", campus.FormData)
	g.Post("/", campus.Create)
	g.Get("/:id", campus.Show)
	g.Get("/:id/edit", campus.EditData)
	g.Put("/:id", campus.Update)
	g.Delete("/:id", campus.Destroy)

	building := ctr.NewBuildingController(db, bs)
	g = r.Group("/buildings")
	g.Get("/", building.List)
	g.Get("/form", building.FormData)
	g.Post("/", building.Create)
	g.Get("/:id", building.Show)
	g.Get("/:id/edit", building.EditData)
	g.Put("/:id", building.Update)
	g.Delete("/:id", building.Destroy)

	room := ctr.NewRoomController(db, bs)
	g = r.Group("/rooms")
	g.Get("/", room.List)
	g.Get("/form", room.FormData)
	g.Post("/", room.Create)
	g.Get("/:id", room.Show)
	g.Get("/:id/edit", room.EditData)
	g.Put("/:id", room.Update)
	g.Delete("/:id", room.Destroy)

	department := ctr.NewDepartmentController(db, bs)
	g = r.Group("/departments")
	g.Get("/", department.List)
	g.Get("/form", department.FormData)
	g.Post("/", department.Create)
	g.Get("/:id", department.Show)
	g.Get("/:id/edit", department.EditData)
	g.Put("/:id", department.Update)
	g.Delete("/:id", department.Destroy)
}
