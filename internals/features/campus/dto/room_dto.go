// internals/features/campus/dto/room_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/campus/model"
)

type CreateRoomRequest struct {
	CampusID   *uuid.UUID `json:"room_campus_id" form:"room_campus_id"`
	BuildingID uuid.UUID  `json:"room_building_id" form:"room_building_id" validate:"required"`

	Code     string  `json:"room_code" form:"room_code" validate:"required,min=1,max=40"`
	Name     string  `json:"room_name" form:"room_name" validate:"required,min=1,max=120"`
	Floor    *int    `json:"room_floor" form:"room_floor"`
	Capacity *int    `json:"room_capacity" form:"room_capacity" validate:"omitempty,min=0"`
	Type     *string `json:"room_type" form:"room_type" validate:"omitempty,max=40"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Type)
}

func (r *CreateRoomRequest) ToModel(campusID uuid.UUID) *m.RoomModel {
	return &m.RoomModel{
		RoomCampusID:   campusID,
		RoomBuildingID: r.BuildingID,
		RoomCode:       r.Code,
		RoomName:       r.Name,
		RoomFloor:      r.Floor,
		RoomCapacity:   r.Capacity,
		RoomType:       r.Type,
	}
}

type UpdateRoomRequest struct {
	BuildingID *uuid.UUID `json:"room_building_id" form:"room_building_id"`

	Code     *string `json:"room_code" form:"room_code" validate:"omitempty,min=1,max=40"`
	Name     *string `json:"room_name" form:"room_name" validate:"omitempty,min=1,max=120"`
	Floor    *int    `json:"room_floor" form:"room_floor"`
	Capacity *int    `json:"room_capacity" form:"room_capacity" validate:"omitempty,min=0"`
	Type     *string `json:"room_type" form:"room_type" validate:"omitempty,max=40"`
}

func (r *UpdateRoomRequest) Normalize() {
	trimPtr(&r.Code)
	trimPtr(&r.Name)
	trimPtr(&r.Type)
}

func (r *UpdateRoomRequest) ApplyToModel(mm *m.RoomModel) {
	if r.BuildingID != nil {
		mm.RoomBuildingID = *r.BuildingID
	}
	if r.Code != nil {
		mm.RoomCode = *r.Code
	}
	if r.Name != nil {
		mm.RoomName = *r.Name
	}
	if r.Floor != nil {
		mm.RoomFloor = r.Floor
	}
	if r.Capacity != nil {
		mm.RoomCapacity = r.Capacity
	}
	if r.Type != nil {
		mm.RoomType = r.Type
	}
}
