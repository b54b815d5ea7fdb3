package service

import (
	"context"
	"strings"
	"time"

	"salesdesk/config"
	"salesdesk/infras/kafka"
	"salesdesk/infras/otel"
	"salesdesk/internal/domains/availability/model/dto"
	catalogRepository "salesdesk/internal/domains/catalog/repository"
	ledgerModel "salesdesk/internal/domains/ledger/model"
	ledgerDTO "salesdesk/internal/domains/ledger/model/dto"
	ledgerRepository "salesdesk/internal/domains/ledger/repository"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const eventSendTimeout = 10 * time.Second

// Availability answers which rooms can host an event and records bookings
// against the ledger.
type Availability interface {
	Check(ctx context.Context, req dto.CheckRequest) (dto.CheckResponse, error)
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.ReserveResponse, error)
}

type serviceImpl struct {
	catalog catalogRepository.Catalog
	ledger  ledgerRepository.Ledger
	events  kafka.Client
	config  *config.Config
	otel    otel.Otel
}

func New(
	catalog catalogRepository.Catalog,
	ledger ledgerRepository.Ledger,
	events kafka.Client,
	conf *config.Config,
	ot otel.Otel,
) Availability {
	return &serviceImpl{
		catalog: catalog,
		ledger:  ledger,
		events:  events,
		config:  conf,
		otel:    ot,
	}
}

// Check returns every room that supports the requested event type, seats the
// headcount, and has no booking on the requested date. Rooms come back in
// catalog order. All three request fields are required; missing ones are
// reported together.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckRequest) (res dto.CheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := req.Normalize()
	if err != nil {
		return res, err
	}

	eventType := strings.ToLower(strings.TrimSpace(req.EventType))

	available := make([]string, 0)

	for _, room := range s.catalog.GetAll(ctx) {
		if !room.Supports(eventType) {
			continue
		}

		if room.Capacity < req.Headcount {
			continue
		}

		if len(s.ledger.BookingsOn(ctx, date, room.Name)) > 0 {
			continue
		}

		available = append(available, room.Name)
	}

	res = dto.CheckResponse{
		Date:           date.Format(constant.BookingDateFormat),
		Headcount:      req.Headcount,
		EventType:      eventType,
		AvailableRooms: available,
	}

	return res, nil
}

// Reserve re-validates availability for a specific room and appends a
// confirmed booking. The booking event is published in the background.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.ReserveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := time.Parse(constant.BookingDateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return res, failure.BadRequestFromString("invalid date, want YYYY-MM-DD") //nolint:wrapcheck
	}

	room, ok := s.catalog.Get(ctx, req.Room)
	if !ok {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	eventType := strings.ToLower(strings.TrimSpace(req.EventType))
	if !room.Supports(eventType) {
		return res, failure.Conflict("room " + room.Name + " does not host " + eventType + " events") //nolint:wrapcheck
	}

	if room.Capacity < req.Headcount {
		return res, failure.CapacityExceeded(room.Name, room.Capacity, req.Headcount) //nolint:wrapcheck
	}

	booking := ledgerModel.NewBooking(date, room.Name, eventType, req.Headcount, req.ContactName, req.ContactEmail, req.ContactPhone)

	if !s.ledger.AppendIfFree(ctx, booking) {
		return res, failure.Conflict("room " + room.Name + " is already booked on " + req.Date) //nolint:wrapcheck
	}

	s.publishBookingCreated(booking)

	log.Info().
		Str("room", booking.Room).
		Str("date", req.Date).
		Int("headcount", booking.Headcount).
		Msg("booking reserved")

	res = dto.ReserveResponse{
		BookingID: booking.ID.String(),
		Date:      booking.Date.Format(constant.BookingDateFormat),
		Room:      booking.Room,
		Status:    booking.Status,
	}

	return res, nil
}

func (s *serviceImpl) publishBookingCreated(booking ledgerModel.Booking) {
	var event ledgerDTO.BookingEvent
	event.FromModel(booking)

	topic := s.config.Kafka.BookingTopic

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), eventSendTimeout)
		defer cancel()

		err := s.events.SendMessages(sendCtx, topic, kafka.Message{
			Key:   event.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}
