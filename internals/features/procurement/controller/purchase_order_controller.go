// internals/features/procurement/controller/purchase_order_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/procurement/dto"
	m "sekolahku_backend/internals/features/procurement/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type PurchaseOrderController = resource.Controller[m.PurchaseOrderModel, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]

func NewPurchaseOrderController(db *gorm.DB, bs *blob.Service) *PurchaseOrderController {
	return &PurchaseOrderController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "purchase_order",
			Labels: map[string]string{"id": "Purchase order", "en": "Purchase order"},

			Table:    "purchase_orders",
			IDCol:    "po_id",
			ScopeCol: "po_campus_id",

			Searchable: []string{"po_number"},
			Filters: map[string]string{
				"status":      "po_status",
				"supplier_id": "po_supplier_id",
			},
			Sortable: map[string]string{
				"number":     "po_number",
				"status":     "po_status",
				"total":      "po_total_idr",
				"ordered_at": "po_ordered_at",
				"created_at": "po_created_at",
			},
			DefaultSort: "created_at",
			DefaultDir:  "desc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "po_number", Column: "po_number"}},
			Refs: []resource.RefRule{
				{Key: "po_campus_id", Column: "po_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "po_supplier_id", Column: "po_supplier_id", Table: "suppliers", RefColumn: "supplier_id"},
			},
			Files: []resource.FileRule{
				{
					Field:    "po_document",
					Column:   "po_document_url",
					Dir:      "pdfs",
					NameFrom: "po_number",
				},
			},
			FormRefs: []resource.FormRef{
				{Key: "suppliers", Table: "suppliers", IDCol: "supplier_id", LabelCol: "supplier_name"},
			},
		},
		Hooks: resource.Hooks[m.PurchaseOrderModel, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]{
			NewFromCreate: func(req *dto.CreatePurchaseOrderRequest, actor *helperAuth.Actor) *m.PurchaseOrderModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdatePurchaseOrderRequest, mm *m.PurchaseOrderModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.PurchaseOrderModel) any { return mm },
			ColumnValue: func(mm *m.PurchaseOrderModel, col string) any {
				switch col {
				case "po_id":
					return mm.POID
				case "po_campus_id":
					return mm.POCampusID
				case "po_number":
					return mm.PONumber
				case "po_supplier_id":
					return mm.POSupplierID
				case "po_document_url":
					return mm.PODocumentURL
				}
				return nil
			},
			SetFileURL: func(mm *m.PurchaseOrderModel, col, url string) {
				if col == "po_document_url" {
					mm.PODocumentURL = &url
				}
			},
		},
	}
}
