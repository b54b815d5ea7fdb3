package dto

import (
	"strings"

	"salesdesk/internal/domains/catalog/model"
)

type AddRoomRequest struct {
	Name       string   `json:"name"        validate:"required,max=100"`
	Capacity   int      `json:"capacity"    validate:"required,gt=0"`
	EventTypes []string `json:"event_types" validate:"required,min=1,dive,required"`
}

func (r *AddRoomRequest) ToModel() model.Room {
	eventTypes := make([]string, 0, len(r.EventTypes))
	for _, t := range r.EventTypes {
		eventTypes = append(eventTypes, strings.ToLower(strings.TrimSpace(t)))
	}

	return model.Room{
		Name:       strings.TrimSpace(r.Name),
		Capacity:   r.Capacity,
		EventTypes: eventTypes,
	}
}

type RoomResponse struct {
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	EventTypes []string `json:"event_types"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.EventTypes = model.EventTypes
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
