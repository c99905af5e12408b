// internals/features/assets/model/asset_subcategory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetSubcategoryModel struct {
	SubcategoryID         uuid.UUID `gorm:"column:subcategory_id;type:uuid;primaryKey" json:"subcategory_id"`
	SubcategoryCampusID   uuid.UUID `gorm:"column:subcategory_campus_id;type:uuid;not null;index" json:"subcategory_campus_id"`
	SubcategoryCategoryID uuid.UUID `gorm:"column:subcategory_category_id;type:uuid;not null;index" json:"subcategory_category_id"`

	SubcategoryCode string `gorm:"column:subcategory_code;type:varchar(40);not null"  json:"subcategory_code"`
	SubcategoryName string `gorm:"column:subcategory_name;type:varchar(120);not null" json:"subcategory_name"`

	SubcategoryCreatedAt time.Time `gorm:"column:subcategory_created_at;not null;autoCreateTime" json:"subcategory_created_at"`
	SubcategoryUpdatedAt time.Time `gorm:"column:subcategory_updated_at;not null;autoUpdateTime" json:"subcategory_updated_at"`
}

func (AssetSubcategoryModel) TableName() string { return "asset_subcategories" }

func (m *AssetSubcategoryModel) BeforeCreate(*gorm.DB) error {
	if m.SubcategoryID == uuid.Nil {
		m.SubcategoryID = uuid.New()
	}
	return nil
}
