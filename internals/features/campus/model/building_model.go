// internals/features/campus/model/building_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildingModel struct {
	BuildingID       uuid.UUID `gorm:"column:building_id;type:uuid;primaryKey" json:"building_id"`
	BuildingCampusID uuid.UUID `gorm:"column:building_campus_id;type:uuid;not null;index" json:"building_campus_id"`

	BuildingCode   string `gorm:"column:building_code;type:varchar(40);not null"  json:"building_code"`
	BuildingName   string `gorm:"column:building_name;type:varchar(120);not null" json:"building_name"`
	BuildingFloors *int   `gorm:"column:building_floors"                          json:"building_floors,omitempty"`

	BuildingCreatedAt time.Time `gorm:"column:building_created_at;not null;autoCreateTime" json:"building_created_at"`
	BuildingUpdatedAt time.Time `gorm:"column:building_updated_at;not null;autoUpdateTime" json:"building_updated_at"`
}

func (BuildingModel) TableName() string { return "buildings" }

func (m *BuildingModel) BeforeCreate(*gorm.DB) error {
	if m.BuildingID == uuid.Nil {
		m.BuildingID = uuid.New()
	}
	return nil
}
