// internals/features/assets/controller/asset_category_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/assets/dto"
	m "sekolahku_backend/internals/features/assets/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type AssetCategoryController = resource.Controller[m.AssetCategoryModel, dto.CreateAssetCategoryRequest, dto.UpdateAssetCategoryRequest]

func NewAssetCategoryController(db *gorm.DB, bs *blob.Service) *AssetCategoryController {
	return &AssetCategoryController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "asset_category",
			Labels: map[string]string{"id": "Kategori aset", "en": "Asset category"},

			Table:    "asset_categories",
			IDCol:    "category_id",
			ScopeCol: "category_campus_id",

			Searchable:  []string{"category_code", "category_name"},
			Sortable:    map[string]string{"name": "category_name", "code": "category_code", "created_at": "category_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "category_code", Column: "category_code"}},
			Refs: []resource.RefRule{
				{Key: "category_campus_id", Column: "category_campus_id", Table: "campuses", RefColumn: "campus_id"},
			},
		},
		Hooks: resource.Hooks[m.AssetCategoryModel, dto.CreateAssetCategoryRequest, dto.UpdateAssetCategoryRequest]{
			NewFromCreate: func(req *dto.CreateAssetCategoryRequest, actor *helperAuth.Actor) *m.AssetCategoryModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateAssetCategoryRequest, mm *m.AssetCategoryModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.AssetCategoryModel) any { return mm },
			ColumnValue: func(mm *m.AssetCategoryModel, col string) any {
				switch col {
				case "category_id":
					return mm.CategoryID
				case "category_campus_id":
					return mm.CategoryCampusID
				case "category_code":
					return mm.CategoryCode
				}
				return nil
			},
		},
	}
}
