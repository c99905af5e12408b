// internals/features/assets/controller/asset_subcategory_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/assets/dto"
	m "sekolahku_backend/internals/features/assets/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type AssetSubcategoryController = resource.Controller[m.AssetSubcategoryModel, dto.CreateAssetSubcategoryRequest, dto.UpdateAssetSubcategoryRequest]

func NewAssetSubcategoryController(db *gorm.DB, bs *blob.Service) *AssetSubcategoryController {
	return &AssetSubcategoryController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "asset_subcategory",
			Labels: map[string]string{"id": "Subkategori aset", "en": "Asset subcategory"},

			Table:    "asset_subcategories",
			IDCol:    "subcategory_id",
			ScopeCol: "subcategory_campus_id",

			Searchable:  []string{"subcategory_code", "subcategory_name"},
			Filters:     map[string]string{"category_id": "subcategory_category_id"},
			Sortable:    map[string]string{"name": "subcategory_name", "code": "subcategory_code", "created_at": "subcategory_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "subcategory_code", Column: "subcategory_code"}},
			Refs: []resource.RefRule{
				{Key: "subcategory_campus_id", Column: "subcategory_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "subcategory_category_id", Column: "subcategory_category_id", Table: "asset_categories", RefColumn: "category_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "categories", Table: "asset_categories", IDCol: "category_id", LabelCol: "category_name", ScopeCol: "category_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.AssetSubcategoryModel, dto.CreateAssetSubcategoryRequest, dto.UpdateAssetSubcategoryRequest]{
			NewFromCreate: func(req *dto.CreateAssetSubcategoryRequest, actor *helperAuth.Actor) *m.AssetSubcategoryModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateAssetSubcategoryRequest, mm *m.AssetSubcategoryModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.AssetSubcategoryModel) any { return mm },
			ColumnValue: func(mm *m.AssetSubcategoryModel, col string) any {
				switch col {
				case "subcategory_id":
					return mm.SubcategoryID
				case "subcategory_campus_id":
					return mm.SubcategoryCampusID
				case "subcategory_category_id":
					return mm.SubcategoryCategoryID
				case "subcategory_code":
					return mm.SubcategoryCode
				}
				return nil
			},
		},
	}
}
