// internals/features/procurement/model/supplier_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierModel: pemasok dipakai lintas campus (global, tanpa scope).
type SupplierModel struct {
	SupplierID uuid.UUID `gorm:"column:supplier_id;type:uuid;primaryKey" json:"supplier_id"`

	SupplierCode    string  `gorm:"column:supplier_code;type:varchar(40);not null"  json:"supplier_code"`
	SupplierName    string  `gorm:"column:supplier_name;type:varchar(160);not null" json:"supplier_name"`
	SupplierContact *string `gorm:"column:supplier_contact;type:varchar(120)"       json:"supplier_contact,omitempty"`
	SupplierPhone   *string `gorm:"column:supplier_phone;type:varchar(30)"          json:"supplier_phone,omitempty"`
	SupplierEmail   *string `gorm:"column:supplier_email;type:varchar(120)"         json:"supplier_email,omitempty"`
	SupplierAddr    *string `gorm:"column:supplier_address;type:text"               json:"supplier_address,omitempty"`

	SupplierCreatedAt time.Time `gorm:"column:supplier_created_at;not null;autoCreateTime" json:"supplier_created_at"`
	SupplierUpdatedAt time.Time `gorm:"column:supplier_updated_at;not null;autoUpdateTime" json:"supplier_updated_at"`
}

func (SupplierModel) TableName() string { return "suppliers" }

func (m *SupplierModel) BeforeCreate(*gorm.DB) error {
	if m.SupplierID == uuid.Nil {
		m.SupplierID = uuid.New()
	}
	return nil
}
