// internals/features/library/model/shelf_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShelfModel struct {
	ShelfID         uuid.UUID `gorm:"column:shelf_id;type:uuid;primaryKey" json:"shelf_id"`
	ShelfCampusID   uuid.UUID `gorm:"column:shelf_campus_id;type:uuid;not null;index" json:"shelf_campus_id"`
	ShelfBookcaseID uuid.UUID `gorm:"column:shelf_bookcase_id;type:uuid;not null;index" json:"shelf_bookcase_id"`

	ShelfCode string `gorm:"column:shelf_code;type:varchar(40);not null"  json:"shelf_code"`
	ShelfName string `gorm:"column:shelf_name;type:varchar(120);not null" json:"shelf_name"`

	ShelfCreatedAt time.Time `gorm:"column:shelf_created_at;not null;autoCreateTime" json:"shelf_created_at"`
	ShelfUpdatedAt time.Time `gorm:"column:shelf_updated_at;not null;autoUpdateTime" json:"shelf_updated_at"`
}

func (ShelfModel) TableName() string { return "shelves" }

func (m *ShelfModel) BeforeCreate(*gorm.DB) error {
	if m.ShelfID == uuid.Nil {
		m.ShelfID = uuid.New()
	}
	return nil
}
