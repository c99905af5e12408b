// internals/features/library/controller/shelf_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/library/dto"
	m "sekolahku_backend/internals/features/library/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type ShelfController = resource.Controller[m.ShelfModel, dto.CreateShelfRequest, dto.UpdateShelfRequest]

func NewShelfController(db *gorm.DB, bs *blob.Service) *ShelfController {
	return &ShelfController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "shelf",
			Labels: map[string]string{"id": "Rak", "en": "Shelf"},

			Table:    "shelves",
			IDCol:    "shelf_id",
			ScopeCol: "shelf_campus_id",

			Searchable:  []string{"shelf_code", "shelf_name"},
			Filters:     map[string]string{"bookcase_id": "shelf_bookcase_id"},
			Sortable:    map[string]string{"name": "shelf_name", "code": "shelf_code", "created_at": "shelf_created_at"},
			DefaultSort: "code",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "shelf_code", Column: "shelf_code"}},
			Refs: []resource.RefRule{
				{Key: "shelf_campus_id", Column: "shelf_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "shelf_bookcase_id", Column: "shelf_bookcase_id", Table: "bookcases", RefColumn: "bookcase_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "bookcases", Table: "bookcases", IDCol: "bookcase_id", LabelCol: "bookcase_name", ScopeCol: "bookcase_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.ShelfModel, dto.CreateShelfRequest, dto.UpdateShelfRequest]{
			NewFromCreate: func(req *dto.CreateShelfRequest, actor *helperAuth.Actor) *m.ShelfModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateShelfRequest, mm *m.ShelfModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.ShelfModel) any { return mm },
			ColumnValue: func(mm *m.ShelfModel, col string) any {
				switch col {
				case "shelf_id":
					return mm.ShelfID
				case "shelf_campus_id":
					return mm.ShelfCampusID
				case "shelf_bookcase_id":
					return mm.ShelfBookcaseID
				case "shelf_code":
					return mm.ShelfCode
				}
				return nil
			},
		},
	}
}
