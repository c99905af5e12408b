// internals/features/library/dto/bookcase_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/library/model"
)

type CreateBookcaseRequest struct {
	CampusID *uuid.UUID `json:"bookcase_campus_id" form:"bookcase_campus_id"`
	RoomID   uuid.UUID  `json:"bookcase_room_id" form:"bookcase_room_id" validate:"required"`

	Code string `json:"bookcase_code" form:"bookcase_code" validate:"required,min=1,max=40"`
	Name string `json:"bookcase_name" form:"bookcase_name" validate:"required,min=1,max=120"`
}

func (r *CreateBookcaseRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateBookcaseRequest) ToModel(campusID uuid.UUID) *m.BookcaseModel {
	return &m.BookcaseModel{
		BookcaseCampusID: campusID,
		BookcaseRoomID:   r.RoomID,
		BookcaseCode:     r.Code,
		BookcaseName:     r.Name,
	}
}

type UpdateBookcaseRequest struct {
	RoomID *uuid.UUID `json:"bookcase_room_id" form:"bookcase_room_id"`

	Code *string `json:"bookcase_code" form:"bookcase_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"bookcase_name" form:"bookcase_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateBookcaseRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
}

func (r *UpdateBookcaseRequest) ApplyToModel(mm *m.BookcaseModel) {
	if r.RoomID != nil {
		mm.BookcaseRoomID = *r.RoomID
	}
	if r.Code != nil {
		mm.BookcaseCode = *r.Code
	}
	if r.Name != nil {
		mm.BookcaseName = *r.Name
	}
}
