// internals/features/procurement/dto/purchase_order_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/procurement/model"
)

// POItemRequest: satu baris barang di purchase order.
type POItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=160"`
	Qty          int    `json:"qty" validate:"required,min=1"`
	UnitPriceIDR int64  `json:"unit_price_idr" validate:"min=0"`
}

type CreatePurchaseOrderRequest struct {
	CampusID *uuid.UUID `json:"po_campus_id" form:"po_campus_id"`

	Number     string    `json:"po_number" form:"po_number" validate:"required,min=1,max=60"`
	SupplierID uuid.UUID `json:"po_supplier_id" form:"po_supplier_id" validate:"required"`

	// kosong → default "draft"
	Status *string `json:"po_status" form:"po_status" validate:"omitempty,oneof=draft ordered received cancelled"`

	Items []POItemRequest `json:"po_items" validate:"omitempty,dive"`

	// kosong → dihitung dari items
	TotalIDR *int64 `json:"po_total_idr" form:"po_total_idr" validate:"omitempty,min=0"`

	OrderedAt *time.Time `json:"po_ordered_at" form:"po_ordered_at"`
	Notes     *string    `json:"po_notes" form:"po_notes"`
}

func (r *CreatePurchaseOrderRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	trimPtr(&r.Status)
	trimPtr(&r.Notes)
	for i := range r.Items {
		r.Items[i].Name = strings.TrimSpace(r.Items[i].Name)
	}
}

func (r *CreatePurchaseOrderRequest) ToModel(campusID uuid.UUID) *m.PurchaseOrderModel {
	status := m.POStatusDraft
	if r.Status != nil {
		status = *r.Status
	}

	var items datatypes.JSON
	if len(r.Items) > 0 {
		if b, err := sonic.Marshal(r.Items); err == nil {
			items = datatypes.JSON(b)
		}
	}

	total := int64(0)
	if r.TotalIDR != nil {
		total = *r.TotalIDR
	} else {
		for _, it := range r.Items {
			total += int64(it.Qty) * it.UnitPriceIDR
		}
	}

	return &m.PurchaseOrderModel{
		POCampusID:   campusID,
		PONumber:     r.Number,
		POSupplierID: r.SupplierID,
		POStatus:     status,
		POItems:      items,
		POTotalIDR:   total,
		POOrderedAt:  r.OrderedAt,
		PONotes:      r.Notes,
	}
}

type UpdatePurchaseOrderRequest struct {
	Number     *string    `json:"po_number" form:"po_number" validate:"omitempty,min=1,max=60"`
	SupplierID *uuid.UUID `json:"po_supplier_id" form:"po_supplier_id"`

	Status *string `json:"po_status" form:"po_status" validate:"omitempty,oneof=draft ordered received cancelled"`

	// nil = tidak diubah; [] = dikosongkan
	Items *[]POItemRequest `json:"po_items" validate:"omitempty,dive"`

	TotalIDR  *int64     `json:"po_total_idr" form:"po_total_idr" validate:"omitempty,min=0"`
	OrderedAt *time.Time `json:"po_ordered_at" form:"po_ordered_at"`
	Notes     *string    `json:"po_notes" form:"po_notes"`
}

func (r *UpdatePurchaseOrderRequest) Normalize() {
	trimPtr(&r.Number)
	trimPtr(&r.Status)
	trimPtr(&r.Notes)
	if r.Items != nil {
		for i := range *r.Items {
			(*r.Items)[i].Name = strings.TrimSpace((*r.Items)[i].Name)
		}
	}
}

func (r *UpdatePurchaseOrderRequest) ApplyToModel(mm *m.PurchaseOrderModel) {
	if r.Number != nil {
		mm.PONumber = *r.Number
	}
	if r.SupplierID != nil {
		mm.POSupplierID = *r.SupplierID
	}
	if r.Status != nil {
		mm.POStatus = *r.Status
	}
	if r.Items != nil {
		if len(*r.Items) == 0 {
			mm.POItems = nil
		} else if b, err := sonic.Marshal(*r.Items); err == nil {
			mm.POItems = datatypes.JSON(b)
		}
		if r.TotalIDR == nil {
			total := int64(0)
			for _, it := range *r.Items {
				total += int64(it.Qty) * it.UnitPriceIDR
			}
			mm.POTotalIDR = total
		}
	}
	if r.TotalIDR != nil {
		mm.POTotalIDR = *r.TotalIDR
	}
	if r.OrderedAt != nil {
		mm.POOrderedAt = r.OrderedAt
	}
	if r.Notes != nil {
		mm.PONotes = r.Notes
	}
}
