// internals/features/assets/model/asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status inventaris aset.
const (
	AssetStatusAvailable   = "available"
	AssetStatusInUse       = "in_use"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

// AssetModel: inventaris aset. Soft delete dua langkah; foto aset dinamai
// dari tag yang sudah disanitasi. Harga dalam satuan minor (rupiah utuh).
type AssetModel struct {
	AssetID       uuid.UUID `gorm:"column:asset_id;type:uuid;primaryKey" json:"asset_id"`
	AssetCampusID uuid.UUID `gorm:"column:asset_campus_id;type:uuid;not null;index" json:"asset_campus_id"`

	AssetTag    string `gorm:"column:asset_tag;type:varchar(60);not null;index"   json:"asset_tag"`
	AssetName   string `gorm:"column:asset_name;type:varchar(160);not null"       json:"asset_name"`
	AssetStatus string `gorm:"column:asset_status;type:varchar(20);not null;default:available" json:"asset_status"`

	AssetCategoryID    uuid.UUID  `gorm:"column:asset_category_id;type:uuid;not null;index" json:"asset_category_id"`
	AssetSubcategoryID *uuid.UUID `gorm:"column:asset_subcategory_id;type:uuid;index"       json:"asset_subcategory_id,omitempty"`
	AssetDepartmentID  *uuid.UUID `gorm:"column:asset_department_id;type:uuid;index"        json:"asset_department_id,omitempty"`
	AssetRoomID        *uuid.UUID `gorm:"column:asset_room_id;type:uuid;index"              json:"asset_room_id,omitempty"`
	AssetSupplierID    *uuid.UUID `gorm:"column:asset_supplier_id;type:uuid;index"          json:"asset_supplier_id,omitempty"`

	AssetPriceIDR    *int64     `gorm:"column:asset_price_idr"    json:"asset_price_idr,omitempty"`
	AssetPurchasedAt *time.Time `gorm:"column:asset_purchased_at" json:"asset_purchased_at,omitempty"`

	AssetImageURL      *string `gorm:"column:asset_image_url;type:text"       json:"asset_image_url,omitempty"`
	AssetImageThumbURL *string `gorm:"column:asset_image_thumb_url;type:text" json:"asset_image_thumb_url,omitempty"`

	AssetNotes *string `gorm:"column:asset_notes;type:text" json:"asset_notes,omitempty"`

	AssetCreatedAt time.Time      `gorm:"column:asset_created_at;not null;autoCreateTime" json:"asset_created_at"`
	AssetUpdatedAt time.Time      `gorm:"column:asset_updated_at;not null;autoUpdateTime" json:"asset_updated_at"`
	AssetDeletedAt gorm.DeletedAt `gorm:"column:asset_deleted_at;index"                   json:"asset_deleted_at,omitempty"`
}

func (AssetModel) TableName() string { return "assets" }

func (m *AssetModel) BeforeCreate(*gorm.DB) error {
	if m.AssetID == uuid.Nil {
		m.AssetID = uuid.New()
	}
	return nil
}
