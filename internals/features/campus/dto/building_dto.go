// internals/features/campus/dto/building_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/campus/model"
)

type CreateBuildingRequest struct {
	// owner global wajib mengisi; actor ber-scope campus otomatis pakai scope-nya
	CampusID *uuid.UUID `json:"building_campus_id" form:"building_campus_id"`

	Code   string `json:"building_code" form:"building_code" validate:"required,min=1,max=40"`
	Name   string `json:"building_name" form:"building_name" validate:"required,min=1,max=120"`
	Floors *int   `json:"building_floors" form:"building_floors" validate:"omitempty,min=1,max=100"`
}

func (r *CreateBuildingRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateBuildingRequest) ToModel(campusID uuid.UUID) *m.BuildingModel {
	return &m.BuildingModel{
		BuildingCampusID: campusID,
		BuildingCode:     r.Code,
		BuildingName:     r.Name,
		BuildingFloors:   r.Floors,
	}
}

type UpdateBuildingRequest struct {
	Code   *string `json:"building_code" form:"building_code" validate:"omitempty,min=1,max=40"`
	Name   *string `json:"building_name" form:"building_name" validate:"omitempty,min=1,max=120"`
	Floors *int    `json:"building_floors" form:"building_floors" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateBuildingRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
}

func (r *UpdateBuildingRequest) ApplyToModel(mm *m.BuildingModel) {
	if r.Code != nil {
		mm.BuildingCode = *r.Code
	}
	if r.Name != nil {
		mm.BuildingName = *r.Name
	}
	if r.Floors != nil {
		mm.BuildingFloors = r.Floors
	}
}
