// internals/features/campus/controller/building_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/campus/dto"
	m "sekolahku_backend/internals/features/campus/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type BuildingController = resource.Controller[m.BuildingModel, dto.CreateBuildingRequest, dto.UpdateBuildingRequest]

func NewBuildingController(db *gorm.DB, bs *blob.Service) *BuildingController {
	return &BuildingController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "building",
			Labels: map[string]string{"id": "Gedung", "en": "Building"},

			Table:    "buildings",
			IDCol:    "building_id",
			ScopeCol: "building_campus_id",

			Searchable:  []string{"building_code", "building_name"},
			Sortable:    map[string]string{"name": "building_name", "code": "building_code", "created_at": "building_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "building_code", Column: "building_code"}},
			Refs: []resource.RefRule{
				{Key: "building_campus_id", Column: "building_campus_id", Table: "campuses", RefColumn: "campus_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "campuses", Table: "campuses", IDCol: "campus_id", LabelCol: "campus_name", ScopeCol: "campus_id"},
			},
		},
		Hooks: resource.Hooks[m.BuildingModel, dto.CreateBuildingRequest, dto.UpdateBuildingRequest]{
			NewFromCreate: func(req *dto.CreateBuildingRequest, actor *helperAuth.Actor) *m.BuildingModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateBuildingRequest, mm *m.BuildingModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.BuildingModel) any { return mm },
			ColumnValue: func(mm *m.BuildingModel, col string) any {
				switch col {
				case "building_id":
					return mm.BuildingID
				case "building_campus_id":
					return mm.BuildingCampusID
				case "building_code":
					return mm.BuildingCode
				}
				return nil
			},
		},
	}
}
