package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"salesdesk/internal/domains/ledger/model"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/google/uuid"
)

var csvHeader = []string{"date", "room", "event_type", "headcount", "status", "contact_name", "contact_email", "contact_phone"}

// The first four columns are required; status and the contact columns are
// optional and may be omitted per row.
const csvRequiredColumns = 4

// bookingRecord is the interchange shape shared by the CSV and JSON formats.
// Identifiers are not part of the file formats; imports mint fresh ones.
type bookingRecord struct {
	Date         string `json:"date"`
	Room         string `json:"room"`
	EventType    string `json:"event_type"`
	Headcount    int    `json:"headcount"`
	Status       string `json:"status"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

func (r bookingRecord) toModel() (model.Booking, error) {
	date, err := time.Parse(constant.BookingDateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString(fmt.Sprintf("invalid booking date %q", r.Date)) //nolint:wrapcheck
	}

	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == constant.Empty {
		status = model.StatusConfirmed
	}

	booking := model.Booking{
		ID:           uuid.New(),
		Date:         date,
		Room:         strings.TrimSpace(r.Room),
		EventType:    strings.ToLower(strings.TrimSpace(r.EventType)),
		Headcount:    r.Headcount,
		Status:       status,
		ContactName:  strings.TrimSpace(r.ContactName),
		ContactEmail: strings.TrimSpace(r.ContactEmail),
		ContactPhone: strings.TrimSpace(r.ContactPhone),
		CreatedAt:    time.Now(),
	}

	if err := booking.Validate(); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func recordFromModel(booking model.Booking) bookingRecord {
	return bookingRecord{
		Date:         booking.Date.Format(constant.BookingDateFormat),
		Room:         booking.Room,
		EventType:    booking.EventType,
		Headcount:    booking.Headcount,
		Status:       booking.Status,
		ContactName:  booking.ContactName,
		ContactEmail: booking.ContactEmail,
		ContactPhone: booking.ContactPhone,
	}
}

func decodeCSV(data []byte) ([]model.Booking, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("malformed CSV: %v", err)) //nolint:wrapcheck
	}

	if len(rows) == 0 {
		return []model.Booking{}, nil
	}

	start := 0
	if strings.EqualFold(strings.TrimSpace(rows[0][0]), csvHeader[0]) {
		start = 1
	}

	bookings := make([]model.Booking, 0, len(rows))
	for i, row := range rows[start:] {
		if len(row) < csvRequiredColumns {
			return nil, failure.BadRequestFromString(fmt.Sprintf("row %d has %d columns, want at least %d", i+start+1, len(row), csvRequiredColumns)) //nolint:wrapcheck
		}

		headcount, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, failure.BadRequestFromString(fmt.Sprintf("row %d has invalid headcount %q", i+start+1, row[3])) //nolint:wrapcheck
		}

		record := bookingRecord{
			Date:      row[0],
			Room:      row[1],
			EventType: row[2],
			Headcount: headcount,
		}

		if len(row) > 4 {
			record.Status = row[4]
		}
		if len(row) > 5 {
			record.ContactName = row[5]
		}
		if len(row) > 6 {
			record.ContactEmail = row[6]
		}
		if len(row) > 7 {
			record.ContactPhone = row[7]
		}

		booking, err := record.toModel()
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func encodeCSV(bookings []model.Booking) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, booking := range bookings {
		record := recordFromModel(booking)
		row := []string{
			record.Date,
			record.Room,
			record.EventType,
			strconv.Itoa(record.Headcount),
			record.Status,
			record.ContactName,
			record.ContactEmail,
			record.ContactPhone,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func decodeJSON(data []byte) ([]model.Booking, error) {
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("malformed JSON: %v", err)) //nolint:wrapcheck
	}

	bookings := make([]model.Booking, 0, len(records))
	for _, record := range records {
		booking, err := record.toModel()
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func encodeJSON(bookings []model.Booking) ([]byte, error) {
	records := make([]bookingRecord, 0, len(bookings))
	for _, booking := range bookings {
		records = append(records, recordFromModel(booking))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bookings as JSON: %w", err)
	}

	return data, nil
}
