// internals/features/assets/model/asset_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetCategoryModel struct {
	CategoryID       uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryCampusID uuid.UUID `gorm:"column:category_campus_id;type:uuid;not null;index" json:"category_campus_id"`

	CategoryCode string  `gorm:"column:category_code;type:varchar(40);not null"  json:"category_code"`
	CategoryName string  `gorm:"column:category_name;type:varchar(120);not null" json:"category_name"`
	CategoryDesc *string `gorm:"column:category_desc;type:text"                  json:"category_desc,omitempty"`

	CategoryCreatedAt time.Time `gorm:"column:category_created_at;not null;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time `gorm:"column:category_updated_at;not null;autoUpdateTime" json:"category_updated_at"`
}

func (AssetCategoryModel) TableName() string { return "asset_categories" }

func (m *AssetCategoryModel) BeforeCreate(*gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
