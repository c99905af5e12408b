// internals/features/library/dto/shelf_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/library/model"
)

type CreateShelfRequest struct {
	CampusID   *uuid.UUID `json:"shelf_campus_id" form:"shelf_campus_id"`
	BookcaseID uuid.UUID  `json:"shelf_bookcase_id" form:"shelf_bookcase_id" validate:"required"`

	Code string `json:"shelf_code" form:"shelf_code" validate:"required,min=1,max=40"`
	Name string `json:"shelf_name" form:"shelf_name" validate:"required,min=1,max=120"`
}

func (r *CreateShelfRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateShelfRequest) ToModel(campusID uuid.UUID) *m.ShelfModel {
	return &m.ShelfModel{
		ShelfCampusID:   campusID,
		ShelfBookcaseID: r.BookcaseID,
		ShelfCode:       r.Code,
		ShelfName:       r.Name,
	}
}

type UpdateShelfRequest struct {
	BookcaseID *uuid.UUID `json:"shelf_bookcase_id" form:"shelf_bookcase_id"`

	Code *string `json:"shelf_code" form:"shelf_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"shelf_name" form:"shelf_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateShelfRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
}

func (r *UpdateShelfRequest) ApplyToModel(mm *m.ShelfModel) {
	if r.BookcaseID != nil {
		mm.ShelfBookcaseID = *r.BookcaseID
	}
	if r.Code != nil {
		mm.ShelfCode = *r.Code
	}
	if r.Name != nil {
		mm.ShelfName = *r.Name
	}
}
