package model

import (
	"time"

	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a single ledger entry tying a room to a date. A booking in any
// status other than cancelled blocks the room for that date.
type Booking struct {
	ID           uuid.UUID `json:"id"`
	Date         time.Time `json:"date"`
	Room         string    `json:"room"`
	EventType    string    `json:"eventType"`
	Headcount    int       `json:"headcount"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Blocks reports whether the booking occupies the given room on the given
// date. Cancelled bookings never block.
func (b Booking) Blocks(date time.Time, room string) bool {
	if b.Status == StatusCancelled {
		return false
	}

	return b.Room == room && b.Date.Format(constant.BookingDateFormat) == date.Format(constant.BookingDateFormat)
}

// Validate checks the fields every ledger entry must carry regardless of how
// it was produced (import file or a reserve call).
func (b Booking) Validate() error {
	if b.Date.IsZero() {
		return failure.BadRequestFromString("booking date is required")
	}

	if b.Room == constant.Empty {
		return failure.BadRequestFromString("booking room is required")
	}

	if b.Headcount <= 0 {
		return failure.BadRequestFromString("booking headcount must be positive")
	}

	switch b.Status {
	case StatusPending, StatusConfirmed, StatusCancelled:
	default:
		return failure.BadRequestFromString("unknown booking status " + b.Status)
	}

	return nil
}

// NewBooking builds a confirmed booking with a fresh identifier.
func NewBooking(date time.Time, room, eventType string, headcount int, contactName, contactEmail, contactPhone string) Booking {
	return Booking{
		ID:           uuid.New(),
		Date:         date,
		Room:         room,
		EventType:    eventType,
		Headcount:    headcount,
		Status:       StatusConfirmed,
		ContactName:  contactName,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		CreatedAt:    time.Now(),
	}
}
