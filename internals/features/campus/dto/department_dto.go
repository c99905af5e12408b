// internals/features/campus/dto/department_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/campus/model"
)

type CreateDepartmentRequest struct {
	CampusID *uuid.UUID `json:"department_campus_id" form:"department_campus_id"`

	Code string  `json:"department_code" form:"department_code" validate:"required,min=1,max=40"`
	Name string  `json:"department_name" form:"department_name" validate:"required,min=1,max=120"`
	Head *string `json:"department_head" form:"department_head" validate:"omitempty,max=120"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Head)
}

func (r *CreateDepartmentRequest) ToModel(campusID uuid.UUID) *m.DepartmentModel {
	return &m.DepartmentModel{
		DepartmentCampusID: campusID,
		DepartmentCode:     r.Code,
		DepartmentName:     r.Name,
		DepartmentHead:     r.Head,
	}
}

type UpdateDepartmentRequest struct {
	Code *string `json:"department_code" form:"department_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"department_name" form:"department_name" validate:"omitempty,min=1,max=120"`
	Head *string `json:"department_head" form:"department_head" validate:"omitempty,max=120"`
}

func (r *UpdateDepartmentRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
	trimPtr(&r.Head)
}

func (r *UpdateDepartmentRequest) ApplyToModel(mm *m.DepartmentModel) {
	if r.Code != nil {
		mm.DepartmentCode = *r.Code
	}
	if r.Name != nil {
		mm.DepartmentName = *r.Name
	}
	if r.Head != nil {
		mm.DepartmentHead = r.Head
	}
}
