package model

import "strings"

const (
	EntityName = "room"
)

// Room is a bookable room with a fixed capacity and the event types it can
// host. Rooms are immutable once added; changes go through an explicit
// catalog upsert.
type Room struct {
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	EventTypes []string `json:"event_types"`
}

// Supports reports whether the room can host the given event type.
func (r Room) Supports(eventType string) bool {
	for _, t := range r.EventTypes {
		if strings.EqualFold(t, eventType) {
			return true
		}
	}

	return false
}

// DefaultRooms is the seed catalog: the three rooms of the original venue.
func DefaultRooms() []Room {
	return []Room{
		{Name: "Fő terem", Capacity: 100, EventTypes: []string{"wedding", "corporate event", "conference"}},
		{Name: "A konferenciaterem", Capacity: 50, EventTypes: []string{"conference", "corporate event"}},
		{Name: "Bálterem", Capacity: 150, EventTypes: []string{"wedding", "birthday"}},
	}
}
