// internals/features/campus/controller/department_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/campus/dto"
	m "sekolahku_backend/internals/features/campus/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type DepartmentController = resource.Controller[m.DepartmentModel, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]

func NewDepartmentController(db *gorm.DB, bs *blob.Service) *DepartmentController {
	return &DepartmentController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "department",
			Labels: map[string]string{"id": "Departemen", "en": "Department"},

			Table:    "departments",
			IDCol:    "department_id",
			ScopeCol: "department_campus_id",

			Searchable:  []string{"department_code", "department_name", "department_head"},
			Sortable:    map[string]string{"name": "department_name", "code": "department_code", "created_at": "department_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "department_code", Column: "department_code"}},
			Refs: []resource.RefRule{
				{Key: "department_campus_id", Column: "department_campus_id", Table: "campuses", RefColumn: "campus_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "campuses", Table: "campuses", IDCol: "campus_id", LabelCol: "campus_name", ScopeCol: "campus_id"},
			},
		},
		Hooks: resource.Hooks[m.DepartmentModel, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]{
			NewFromCreate: func(req *dto.CreateDepartmentRequest, actor *helperAuth.Actor) *m.DepartmentModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateDepartmentRequest, mm *m.DepartmentModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.DepartmentModel) any { return mm },
			ColumnValue: func(mm *m.DepartmentModel, col string) any {
				switch col {
				case "department_id":
					return mm.DepartmentID
				case "department_campus_id":
					return mm.DepartmentCampusID
				case "department_code":
					return mm.DepartmentCode
				}
				return nil
			},
		},
	}
}
