// internals/features/library/controller/bookcase_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/library/dto"
	m "sekolahku_backend/internals/features/library/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type BookcaseController = resource.Controller[m.BookcaseModel, dto.CreateBookcaseRequest, dto.UpdateBookcaseRequest]

func NewBookcaseController(db *gorm.DB, bs *blob.Service) *BookcaseController {
	return &BookcaseController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "bookcase",
			Labels: map[string]string{"id": "Lemari buku", "en": "Bookcase"},

			Table:    "bookcases",
			IDCol:    "bookcase_id",
			ScopeCol: "bookcase_campus_id",

			Searchable:  []string{"bookcase_code", "bookcase_name"},
			Filters:     map[string]string{"room_id": "bookcase_room_id"},
			Sortable:    map[string]string{"name": "bookcase_name", "code": "bookcase_code", "created_at": "bookcase_created_at"},
			DefaultSort: "code",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "bookcase_code", Column: "bookcase_code"}},
			Refs: []resource.RefRule{
				{Key: "bookcase_campus_id", Column: "bookcase_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "bookcase_room_id", Column: "bookcase_room_id", Table: "rooms", RefColumn: "room_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "rooms", Table: "rooms", IDCol: "room_id", LabelCol: "room_name", ScopeCol: "room_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.BookcaseModel, dto.CreateBookcaseRequest, dto.UpdateBookcaseRequest]{
			NewFromCreate: func(req *dto.CreateBookcaseRequest, actor *helperAuth.Actor) *m.BookcaseModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateBookcaseRequest, mm *m.BookcaseModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.BookcaseModel) any { return mm },
			ColumnValue: func(mm *m.BookcaseModel, col string) any {
				switch col {
				case "bookcase_id":
					return mm.BookcaseID
				case "bookcase_campus_id":
					return mm.BookcaseCampusID
				case "bookcase_room_id":
					return mm.BookcaseRoomID
				case "bookcase_code":
					return mm.BookcaseCode
				}
				return nil
			},
		},
	}
}
