// internals/features/library/model/bookcase_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookcaseModel struct {
	BookcaseID       uuid.UUID `gorm:"column:bookcase_id;type:uuid;primaryKey" json:"bookcase_id"`
	BookcaseCampusID uuid.UUID `gorm:"column:bookcase_campus_id;type:uuid;not null;index" json:"bookcase_campus_id"`
	BookcaseRoomID   uuid.UUID `gorm:"column:bookcase_room_id;type:uuid;not null;index" json:"bookcase_room_id"`

	BookcaseCode string `gorm:"column:bookcase_code;type:varchar(40);not null"  json:"bookcase_code"`
	BookcaseName string `gorm:"column:bookcase_name;type:varchar(120);not null" json:"bookcase_name"`

	BookcaseCreatedAt time.Time `gorm:"column:bookcase_created_at;not null;autoCreateTime" json:"bookcase_created_at"`
	BookcaseUpdatedAt time.Time `gorm:"column:bookcase_updated_at;not null;autoUpdateTime" json:"bookcase_updated_at"`
}

func (BookcaseModel) TableName() string { return "bookcases" }

func (m *BookcaseModel) BeforeCreate(*gorm.DB) error {
	if m.BookcaseID == uuid.Nil {
		m.BookcaseID = uuid.New()
	}
	return nil
}
