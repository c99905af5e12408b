// internals/features/procurement/controller/supplier_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/procurement/dto"
	m "sekolahku_backend/internals/features/procurement/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type SupplierController = resource.Controller[m.SupplierModel, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]

func NewSupplierController(db *gorm.DB, bs *blob.Service) *SupplierController {
	return &SupplierController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "supplier",
			Labels: map[string]string{"id": "Pemasok", "en": "Supplier"},

			Table: "suppliers",
			IDCol: "supplier_id",

			Searchable:  []string{"supplier_code", "supplier_name", "supplier_contact"},
			Sortable:    map[string]string{"name": "supplier_name", "code": "supplier_code", "created_at": "supplier_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "supplier_code", Column: "supplier_code"}},
		},
		Hooks: resource.Hooks[m.SupplierModel, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
			NewFromCreate: func(req *dto.CreateSupplierRequest, _ *helperAuth.Actor) *m.SupplierModel {
				return req.ToModel()
			},
			ApplyUpdate: func(req *dto.UpdateSupplierRequest, mm *m.SupplierModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.SupplierModel) any { return mm },
			ColumnValue: func(mm *m.SupplierModel, col string) any {
				switch col {
				case "supplier_id":
					return mm.SupplierID
				case "supplier_code":
					return mm.SupplierCode
				}
				return nil
			},
		},
	}
}
