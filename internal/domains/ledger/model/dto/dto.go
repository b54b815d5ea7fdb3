package dto

import (
	"time"

	"salesdesk/internal/domains/ledger/model"
	"salesdesk/shared/constant"
)

type BookingResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Room         string `json:"room"`
	EventType    string `json:"eventType,omitempty"`
	Headcount    int    `json:"headcount"`
	Status       string `json:"status"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID.String()
	r.Date = booking.Date.Format(constant.BookingDateFormat)
	r.Room = booking.Room
	r.EventType = booking.EventType
	r.Headcount = booking.Headcount
	r.Status = booking.Status
	r.ContactName = booking.ContactName
	r.ContactEmail = booking.ContactEmail
	r.ContactPhone = booking.ContactPhone
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		var response BookingResponse
		response.FromModel(booking)
		r.Bookings = append(r.Bookings, response)
	}

	r.Total = len(r.Bookings)
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// BookingEvent is the payload published when a booking is appended to the
// ledger.
type BookingEvent struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Room      string    `json:"room"`
	EventType string    `json:"eventType"`
	Headcount int       `json:"headcount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *BookingEvent) FromModel(booking model.Booking) {
	e.ID = booking.ID.String()
	e.Date = booking.Date.Format(constant.BookingDateFormat)
	e.Room = booking.Room
	e.EventType = booking.EventType
	e.Headcount = booking.Headcount
	e.Status = booking.Status
	e.CreatedAt = booking.CreatedAt
}
