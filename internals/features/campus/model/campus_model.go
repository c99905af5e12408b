// internals/features/campus/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampusModel: tenant utama. Global (tanpa scope), tanpa soft delete.
type CampusModel struct {
	CampusID uuid.UUID `gorm:"column:campus_id;type:uuid;primaryKey" json:"campus_id"`

	CampusCode string  `gorm:"column:campus_code;type:varchar(40);not null"  json:"campus_code"`
	CampusName string  `gorm:"column:campus_name;type:varchar(120);not null" json:"campus_name"`
	CampusCity *string `gorm:"column:campus_city;type:varchar(80)"           json:"campus_city,omitempty"`
	CampusAddr *string `gorm:"column:campus_address;type:text"               json:"campus_address,omitempty"`
	CampusTel  *string `gorm:"column:campus_phone;type:varchar(30)"          json:"campus_phone,omitempty"`

	CampusIsActive bool `gorm:"column:campus_is_active;not null;default:true" json:"campus_is_active"`

	CampusCreatedAt time.Time `gorm:"column:campus_created_at;not null;autoCreateTime" json:"campus_created_at"`
	CampusUpdatedAt time.Time `gorm:"column:campus_updated_at;not null;autoUpdateTime" json:"campus_updated_at"`
}

func (CampusModel) TableName() string { return "campuses" }

func (m *CampusModel) BeforeCreate(*gorm.DB) error {
	if m.CampusID == uuid.Nil {
		m.CampusID = uuid.New()
	}
	return nil
}
