// internals/features/campus/dto/campus_dto.go
package dto

import (
	"strings"

	m "sekolahku_backend/internals/features/campus/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateCampusRequest struct {
	Code string `json:"campus_code" form:"campus_code" validate:"required,min=1,max=40"`
	Name string `json:"campus_name" form:"campus_name" validate:"required,min=1,max=120"`

	City     *string `json:"campus_city"    form:"campus_city"    validate:"omitempty,max=80"`
	Address  *string `json:"campus_address" form:"campus_address"`
	Phone    *string `json:"campus_phone"   form:"campus_phone"   validate:"omitempty,max=30"`
	IsActive *bool   `json:"campus_is_active" form:"campus_is_active"`
}

func (r *CreateCampusRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.City)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
}

func (r *CreateCampusRequest) ToModel() *m.CampusModel {
	mm := &m.CampusModel{
		CampusCode: r.Code,
		CampusName: r.Name,
		CampusCity: r.City,
		CampusAddr: r.Address,
		CampusTel:  r.Phone,
	}
	mm.CampusIsActive = true
	if r.IsActive != nil {
		mm.CampusIsActive = *r.IsActive
	}
	return mm
}

/* =========================================================
   UPDATE (partial: field nil = tidak diubah)
   ========================================================= */

type UpdateCampusRequest struct {
	Code *string `json:"campus_code" form:"campus_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"campus_name" form:"campus_name" validate:"omitempty,min=1,max=120"`

	City     *string `json:"campus_city"    form:"campus_city"    validate:"omitempty,max=80"`
	Address  *string `json:"campus_address" form:"campus_address"`
	Phone    *string `json:"campus_phone"   form:"campus_phone"   validate:"omitempty,max=30"`
	IsActive *bool   `json:"campus_is_active" form:"campus_is_active"`
}

func (r *UpdateCampusRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
	trimPtr(&r.City)
	trimPtr(&r.Address)
	trimPtr(&r.Phone)
}

func (r *UpdateCampusRequest) ApplyToModel(mm *m.CampusModel) {
	if r.Code != nil {
		mm.CampusCode = *r.Code
	}
	if r.Name != nil {
		mm.CampusName = *r.Name
	}
	if r.City != nil {
		mm.CampusCity = r.City
	}
	if r.Address != nil {
		mm.CampusAddr = r.Address
	}
	if r.Phone != nil {
		mm.CampusTel = r.Phone
	}
	if r.IsActive != nil {
		mm.CampusIsActive = *r.IsActive
	}
}
