package dto

import (
	"strings"
	"time"

	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
)

type CheckRequest struct {
	Date      string `json:"date" validate:"required"`
	Headcount int    `json:"headcount" validate:"required,gt=0"`
	EventType string `json:"eventType" validate:"required"`
}

// Normalize validates the request fields that extraction may have left empty
// and returns the parsed date. An empty or malformed field is reported with
// its name so the caller can ask for it.
func (r CheckRequest) Normalize() (time.Time, error) {
	missing := make([]string, 0, 3)

	if strings.TrimSpace(r.Date) == constant.Empty {
		missing = append(missing, "date")
	}

	if r.Headcount <= 0 {
		missing = append(missing, "headcount")
	}

	if strings.TrimSpace(r.EventType) == constant.Empty {
		missing = append(missing, "event type")
	}

	if len(missing) > 0 {
		return time.Time{}, failure.IncompleteRequest(missing...) //nolint:wrapcheck
	}

	date, err := time.Parse(constant.BookingDateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date, want YYYY-MM-DD") //nolint:wrapcheck
	}

	return date, nil
}

type CheckResponse struct {
	Date           string   `json:"date"`
	Headcount      int      `json:"headcount"`
	EventType      string   `json:"eventType"`
	AvailableRooms []string `json:"availableRooms"`
}

type ReserveRequest struct {
	Date         string `json:"date" validate:"required"`
	Room         string `json:"room" validate:"required"`
	EventType    string `json:"eventType" validate:"required"`
	Headcount    int    `json:"headcount" validate:"required,gt=0"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

type ReserveResponse struct {
	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	Room      string `json:"room"`
	Status    string `json:"status"`
}
