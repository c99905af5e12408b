// internals/features/assets/dto/asset_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/assets/model"
)

/* =========================================================
   CREATE (JSON atau multipart; field "asset_image" = berkas)
   ========================================================= */

type CreateAssetRequest struct {
	CampusID *uuid.UUID `json:"asset_campus_id" form:"asset_campus_id"`

	Tag  string `json:"asset_tag"  form:"asset_tag"  validate:"required,min=1,max=60"`
	Name string `json:"asset_name" form:"asset_name" validate:"required,min=1,max=160"`

	// kosong → default "available"
	Status *string `json:"asset_status" form:"asset_status" validate:"omitempty,oneof=available in_use maintenance retired"`

	CategoryID    uuid.UUID  `json:"asset_category_id"    form:"asset_category_id" validate:"required"`
	SubcategoryID *uuid.UUID `json:"asset_subcategory_id" form:"asset_subcategory_id"`
	DepartmentID  *uuid.UUID `json:"asset_department_id"  form:"asset_department_id"`
	RoomID        *uuid.UUID `json:"asset_room_id"        form:"asset_room_id"`
	SupplierID    *uuid.UUID `json:"asset_supplier_id"    form:"asset_supplier_id"`

	PriceIDR    *int64     `json:"asset_price_idr"    form:"asset_price_idr" validate:"omitempty,min=0"`
	PurchasedAt *time.Time `json:"asset_purchased_at" form:"asset_purchased_at"`

	Notes *string `json:"asset_notes" form:"asset_notes"`
}

func (r *CreateAssetRequest) Normalize() {
	r.Tag = strings.TrimSpace(r.Tag)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Status)
	trimPtr(&r.Notes)
}

func (r *CreateAssetRequest) ToModel(campusID uuid.UUID) *m.AssetModel {
	status := m.AssetStatusAvailable
	if r.Status != nil {
		status = *r.Status
	}
	return &m.AssetModel{
		AssetCampusID:      campusID,
		AssetTag:           r.Tag,
		AssetName:          r.Name,
		AssetStatus:        status,
		AssetCategoryID:    r.CategoryID,
		AssetSubcategoryID: r.SubcategoryID,
		AssetDepartmentID:  r.DepartmentID,
		AssetRoomID:        r.RoomID,
		AssetSupplierID:    r.SupplierID,
		AssetPriceIDR:      r.PriceIDR,
		AssetPurchasedAt:   r.PurchasedAt,
		AssetNotes:         r.Notes,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateAssetRequest struct {
	Tag  *string `json:"asset_tag"  form:"asset_tag"  validate:"omitempty,min=1,max=60"`
	Name *string `json:"asset_name" form:"asset_name" validate:"omitempty,min=1,max=160"`

	Status *string `json:"asset_status" form:"asset_status" validate:"omitempty,oneof=available in_use maintenance retired"`

	CategoryID    *uuid.UUID `json:"asset_category_id"    form:"asset_category_id"`
	SubcategoryID *uuid.UUID `json:"asset_subcategory_id" form:"asset_subcategory_id"`
	DepartmentID  *uuid.UUID `json:"asset_department_id"  form:"asset_department_id"`
	RoomID        *uuid.UUID `json:"asset_room_id"        form:"asset_room_id"`
	SupplierID    *uuid.UUID `json:"asset_supplier_id"    form:"asset_supplier_id"`

	PriceIDR    *int64     `json:"asset_price_idr"    form:"asset_price_idr" validate:"omitempty,min=0"`
	PurchasedAt *time.Time `json:"asset_purchased_at" form:"asset_purchased_at"`

	Notes *string `json:"asset_notes" form:"asset_notes"`
}

func (r *UpdateAssetRequest) Normalize() {
	trimPtr(&r.Tag)
	trimPtr(&r.Name)
	trimPtr(&r.Status)
	trimPtr(&r.Notes)
}

func (r *UpdateAssetRequest) ApplyToModel(mm *m.AssetModel) {
	if r.Tag != nil {
		mm.AssetTag = *r.Tag
	}
	if r.Name != nil {
		mm.AssetName = *r.Name
	}
	if r.Status != nil {
		mm.AssetStatus = *r.Status
	}
	if r.CategoryID != nil {
		mm.AssetCategoryID = *r.CategoryID
	}
	if r.SubcategoryID != nil {
		mm.AssetSubcategoryID = r.SubcategoryID
	}
	if r.DepartmentID != nil {
		mm.AssetDepartmentID = r.DepartmentID
	}
	if r.RoomID != nil {
		mm.AssetRoomID = r.RoomID
	}
	if r.SupplierID != nil {
		mm.AssetSupplierID = r.SupplierID
	}
	if r.PriceIDR != nil {
		mm.AssetPriceIDR = r.PriceIDR
	}
	if r.PurchasedAt != nil {
		mm.AssetPurchasedAt = r.PurchasedAt
	}
	if r.Notes != nil {
		mm.AssetNotes = r.Notes
	}
}
