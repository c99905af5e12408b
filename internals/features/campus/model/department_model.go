// internals/features/campus/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID       uuid.UUID `gorm:"column:department_id;type:uuid;primaryKey" json:"department_id"`
	DepartmentCampusID uuid.UUID `gorm:"column:department_campus_id;type:uuid;not null;index" json:"department_campus_id"`

	DepartmentCode string  `gorm:"column:department_code;type:varchar(40);not null"  json:"department_code"`
	DepartmentName string  `gorm:"column:department_name;type:varchar(120);not null" json:"department_name"`
	DepartmentHead *string `gorm:"column:department_head;type:varchar(120)"          json:"department_head,omitempty"`

	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;not null;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;not null;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeCreate(*gorm.DB) error {
	if m.DepartmentID == uuid.Nil {
		m.DepartmentID = uuid.New()
	}
	return nil
}
