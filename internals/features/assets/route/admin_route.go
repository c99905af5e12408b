// internals/features/assets/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/assets/controller"
	"sekolahku_backend/internals/helpers/blob"
)

// AssetAdminRoutes: kategori, subkategori, dan inventaris aset.
func AssetAdminRoutes(r fiber.Router, db *gorm.DB, bs *blob.Service) {
	category := ctr.NewAssetCategoryController(db, bs)
	g := r.Group("/asset-categories")
	g.Get("/", category.List)
	g.Get("/form", category.FormData)
	g.Post("/", category.Create)
	g.Get("/:id", category.Show)
	g.Get("/:id/edit", category.EditData)
	g.Put("/:id", category.Update)
	g.Delete("/:id", category.Destroy)

	subcategory := ctr.NewAssetSubcategoryController(db, bs)
	g = r.Group("/asset-subcategories")
	g.Get("/", subcategory.List)
	g.Get("/form", subcategory.FormData)
	g.Post("/", subcategory.Create)
	g.Get("/:id", subcategory.Show)
	g.Get("/:id/edit", subcategory.EditData)
	g.Put("/:id", subcategory.Update)
	g.Delete("/:id", subcategory.Destroy)

	asset := ctr.NewAssetController(db, bs)
	g = r.Group("/assets")
	g.Get("/", asset.List)
	g.Get("/form", asset.FormData)
	g.Post("/", asset.Create)
	g.Get("/:id", asset.Show)
	g.Get("/:id/edit", asset.EditData)
	g.Put("/:id", asset.Update)
	g.Delete("/:id", asset.Destroy)
	g.Post("/:id/restore", asset.Restore)
}
