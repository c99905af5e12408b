// internals/features/campus/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID         uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey" json:"room_id"`
	RoomCampusID   uuid.UUID `gorm:"column:room_campus_id;type:uuid;not null;index" json:"room_campus_id"`
	RoomBuildingID uuid.UUID `gorm:"column:room_building_id;type:uuid;not null;index" json:"room_building_id"`

	RoomCode     string  `gorm:"column:room_code;type:varchar(40);not null"  json:"room_code"`
	RoomName     string  `gorm:"column:room_name;type:varchar(120);not null" json:"room_name"`
	RoomFloor    *int    `gorm:"column:room_floor"                           json:"room_floor,omitempty"`
	RoomCapacity *int    `gorm:"column:room_capacity"                        json:"room_capacity,omitempty"`
	RoomType     *string `gorm:"column:room_type;type:varchar(40)"           json:"room_type,omitempty"`

	RoomCreatedAt time.Time `gorm:"column:room_created_at;not null;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time `gorm:"column:room_updated_at;not null;autoUpdateTime" json:"room_updated_at"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) BeforeCreate(*gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
