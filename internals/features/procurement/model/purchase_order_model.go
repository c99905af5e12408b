// internals/features/procurement/model/purchase_order_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	POStatusDraft     = "draft"
	POStatusOrdered   = "ordered"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrderModel: rincian barang disimpan sebagai kolom JSON
// (array of {name, qty, unit_price_idr}); total dalam satuan minor.
type PurchaseOrderModel struct {
	POID       uuid.UUID `gorm:"column:po_id;type:uuid;primaryKey" json:"po_id"`
	POCampusID uuid.UUID `gorm:"column:po_campus_id;type:uuid;not null;index" json:"po_campus_id"`

	PONumber     string    `gorm:"column:po_number;type:varchar(60);not null;index" json:"po_number"`
	POSupplierID uuid.UUID `gorm:"column:po_supplier_id;type:uuid;not null;index"   json:"po_supplier_id"`
	POStatus     string    `gorm:"column:po_status;type:varchar(20);not null;default:draft" json:"po_status"`

	POItems    datatypes.JSON `gorm:"column:po_items;type:jsonb" json:"po_items,omitempty"`
	POTotalIDR int64          `gorm:"column:po_total_idr;not null;default:0" json:"po_total_idr"`

	POOrderedAt   *time.Time `gorm:"column:po_ordered_at"                 json:"po_ordered_at,omitempty"`
	PODocumentURL *string    `gorm:"column:po_document_url;type:text"     json:"po_document_url,omitempty"`
	PONotes       *string    `gorm:"column:po_notes;type:text"            json:"po_notes,omitempty"`

	POCreatedAt time.Time `gorm:"column:po_created_at;not null;autoCreateTime" json:"po_created_at"`
	POUpdatedAt time.Time `gorm:"column:po_updated_at;not null;autoUpdateTime" json:"po_updated_at"`
}

func (PurchaseOrderModel) TableName() string { return "purchase_orders" }

func (m *PurchaseOrderModel) BeforeCreate(*gorm.DB) error {
	if m.POID == uuid.Nil {
		m.POID = uuid.New()
	}
	return nil
}
