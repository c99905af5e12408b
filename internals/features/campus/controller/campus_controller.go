// internals/features/campus/controller/campus_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/campus/dto"
	m "sekolahku_backend/internals/features/campus/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type CampusController = resource.Controller[m.CampusModel, dto.CreateCampusRequest, dto.UpdateCampusRequest]

func NewCampusController(db *gorm.DB, bs *blob.Service) *CampusController {
	return &CampusController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "campus",
			Labels: map[string]string{"id": "Kampus", "en": "Campus"},

			Table: "campuses",
			IDCol: "campus_id",

			Searchable:  []string{"campus_code", "campus_name", "campus_city"},
			Filters:     map[string]string{"city": "campus_city"},
			Sortable:    map[string]string{"name": "campus_name", "code": "campus_code", "created_at": "campus_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "campus_code", Column: "campus_code"}},
		},
		Hooks: resource.Hooks[m.CampusModel, dto.CreateCampusRequest, dto.UpdateCampusRequest]{
			NewFromCreate: func(req *dto.CreateCampusRequest, _ *helperAuth.Actor) *m.CampusModel {
				return req.ToModel()
			},
			ApplyUpdate: func(req *dto.UpdateCampusRequest, mm *m.CampusModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.CampusModel) any { return mm },
			ColumnValue: func(mm *m.CampusModel, col string) any {
				switch col {
				case "campus_id":
					return mm.CampusID
				case "campus_code":
					return mm.CampusCode
				}
				return nil
			},
		},
	}
}
