// internals/features/campus/controller/room_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/campus/dto"
	m "sekolahku_backend/internals/features/campus/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type RoomController = resource.Controller[m.RoomModel, dto.CreateRoomRequest, dto.UpdateRoomRequest]

func NewRoomController(db *gorm.DB, bs *blob.Service) *RoomController {
	return &RoomController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "room",
			Labels: map[string]string{"id": "Ruangan", "en": "Room"},

			Table:    "rooms",
			IDCol:    "room_id",
			ScopeCol: "room_campus_id",

			Searchable:  []string{"room_code", "room_name"},
			Filters:     map[string]string{"type": "room_type"},
			Sortable:    map[string]string{"name": "room_name", "code": "room_code", "capacity": "room_capacity", "created_at": "room_created_at"},
			DefaultSort: "name",
			DefaultDir:  "asc",
			PerPage:     10,

			Unique: []resource.UniqueRule{{Key: "room_code", Column: "room_code"}},
			Refs: []resource.RefRule{
				{Key: "room_campus_id", Column: "room_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "room_building_id", Column: "room_building_id", Table: "buildings", RefColumn: "building_id"},
			},
			FormRefs: []resource.FormRef{
				{Key: "buildings", Table: "buildings", IDCol: "building_id", LabelCol: "building_name", ScopeCol: "building_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.RoomModel, dto.CreateRoomRequest, dto.UpdateRoomRequest]{
			NewFromCreate: func(req *dto.CreateRoomRequest, actor *helperAuth.Actor) *m.RoomModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateRoomRequest, mm *m.RoomModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.RoomModel) any { return mm },
			ColumnValue: func(mm *m.RoomModel, col string) any {
				switch col {
				case "room_id":
					return mm.RoomID
				case "room_campus_id":
					return mm.RoomCampusID
				case "room_building_id":
					return mm.RoomBuildingID
				case "room_code":
					return mm.RoomCode
				}
				return nil
			},
		},
	}
}
