// internals/features/assets/controller/asset_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/assets/dto"
	m "sekolahku_backend/internals/features/assets/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type AssetController = resource.Controller[m.AssetModel, dto.CreateAssetRequest, dto.UpdateAssetRequest]

func NewAssetController(db *gorm.DB, bs *blob.Service) *AssetController {
	return &AssetController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "asset",
			Labels: map[string]string{"id": "Aset", "en": "Asset"},

			Table:        "assets",
			IDCol:        "asset_id",
			ScopeCol:     "asset_campus_id",
			DeletedAtCol: "asset_deleted_at",

			Searchable: []string{"asset_tag", "asset_name"},
			Filters: map[string]string{
				"status":        "asset_status",
				"category_id":   "asset_category_id",
				"department_id": "asset_department_id",
				"room_id":       "asset_room_id",
			},
			Sortable: map[string]string{
				"tag":          "asset_tag",
				"name":         "asset_name",
				"status":       "asset_status",
				"price":        "asset_price_idr",
				"purchased_at": "asset_purchased_at",
				"created_at":   "asset_created_at",
			},
			DefaultSort: "tag",
			DefaultDir:  "asc",
			PerPage:     15,

			SoftDelete: true,

			Unique: []resource.UniqueRule{{Key: "asset_tag", Column: "asset_tag"}},
			Refs: []resource.RefRule{
				{Key: "asset_campus_id", Column: "asset_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "asset_category_id", Column: "asset_category_id", Table: "asset_categories", RefColumn: "category_id"},
				{Key: "asset_subcategory_id", Column: "asset_subcategory_id", Table: "asset_subcategories", RefColumn: "subcategory_id", Optional: true},
				{Key: "asset_department_id", Column: "asset_department_id", Table: "departments", RefColumn: "department_id", Optional: true},
				{Key: "asset_room_id", Column: "asset_room_id", Table: "rooms", RefColumn: "room_id", Optional: true},
				{Key: "asset_supplier_id", Column: "asset_supplier_id", Table: "suppliers", RefColumn: "supplier_id", Optional: true},
			},
			Files: []resource.FileRule{
				{
					Field:    "asset_image",
					Column:   "asset_image_url",
					ThumbCol: "asset_image_thumb_url",
					Dir:      "assets",
					Image:    true,
					NameFrom: "asset_tag",
				},
			},
			FormRefs: []resource.FormRef{
				{Key: "categories", Table: "asset_categories", IDCol: "category_id", LabelCol: "category_name", ScopeCol: "category_campus_id"},
				{Key: "subcategories", Table: "asset_subcategories", IDCol: "subcategory_id", LabelCol: "subcategory_name", ScopeCol: "subcategory_campus_id"},
				{Key: "departments", Table: "departments", IDCol: "department_id", LabelCol: "department_name", ScopeCol: "department_campus_id"},
				{Key: "rooms", Table: "rooms", IDCol: "room_id", LabelCol: "room_name", ScopeCol: "room_campus_id"},
				{Key: "suppliers", Table: "suppliers", IDCol: "supplier_id", LabelCol: "supplier_name"},
			},
		},
		Hooks: resource.Hooks[m.AssetModel, dto.CreateAssetRequest, dto.UpdateAssetRequest]{
			NewFromCreate: func(req *dto.CreateAssetRequest, actor *helperAuth.Actor) *m.AssetModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateAssetRequest, mm *m.AssetModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.AssetModel) any { return mm },
			ColumnValue: func(mm *m.AssetModel, col string) any {
				switch col {
				case "asset_id":
					return mm.AssetID
				case "asset_campus_id":
					return mm.AssetCampusID
				case "asset_tag":
					return mm.AssetTag
				case "asset_category_id":
					return mm.AssetCategoryID
				case "asset_subcategory_id":
					return mm.AssetSubcategoryID
				case "asset_department_id":
					return mm.AssetDepartmentID
				case "asset_room_id":
					return mm.AssetRoomID
				case "asset_supplier_id":
					return mm.AssetSupplierID
				case "asset_image_url":
					return mm.AssetImageURL
				case "asset_image_thumb_url":
					return mm.AssetImageThumbURL
				}
				return nil
			},
			SetFileURL: func(mm *m.AssetModel, col, url string) {
				switch col {
				case "asset_image_url":
					mm.AssetImageURL = &url
				case "asset_image_thumb_url":
					mm.AssetImageThumbURL = &url
				}
			},
			IsDeleted: func(mm *m.AssetModel) bool { return mm.AssetDeletedAt.Valid },
		},
	}
}
