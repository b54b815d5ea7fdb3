package service_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salesdesk/config"
	"salesdesk/infras/kafka"
	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/availability/model/dto"
	"salesdesk/internal/domains/availability/service"
	catalogModel "salesdesk/internal/domains/catalog/model"
	catalogRepository "salesdesk/internal/domains/catalog/repository"
	ledgerModel "salesdesk/internal/domains/ledger/model"
	ledgerRepository "salesdesk/internal/domains/ledger/repository"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
)

type fakeEventPublisher struct {
	sent chan kafka.Message
}

func newFakeEventPublisher() *fakeEventPublisher {
	return &fakeEventPublisher{sent: make(chan kafka.Message, 8)}
}

func (f *fakeEventPublisher) SendMessages(_ context.Context, _ string, messages ...kafka.Message) error {
	for _, message := range messages {
		f.sent <- message
	}

	return nil
}

type fixture struct {
	service service.Availability
	catalog catalogRepository.Catalog
	ledger  ledgerRepository.Ledger
	events  *fakeEventPublisher
}

func newFixture() fixture {
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "bookings"

	catalog := catalogRepository.New(mockOtel)
	ledger := ledgerRepository.New(mockOtel)
	events := newFakeEventPublisher()

	return fixture{
		service: service.New(catalog, ledger, events, cfg, mockOtel),
		catalog: catalog,
		ledger:  ledger,
		events:  events,
	}
}

func seedBooking(f fixture, date, room string) {
	parsed, _ := time.Parse(constant.BookingDateFormat, date)
	f.ledger.Append(context.Background(), ledgerModel.NewBooking(parsed, room, "wedding", 10, "", "", ""))
}

func TestAvailabilityService_Check(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(f fixture)
		req       dto.CheckRequest
		wantRooms []string
	}{
		{
			name:      "wedding fits two rooms in catalog order",
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 50, EventType: "wedding"},
			wantRooms: []string{"Fő terem", "Bálterem"},
		},
		{
			name:      "headcount filters by capacity",
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 120, EventType: "wedding"},
			wantRooms: []string{"Bálterem"},
		},
		{
			name:      "headcount above every room",
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 500, EventType: "wedding"},
			wantRooms: []string{},
		},
		{
			name:      "event type is matched case-insensitively",
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 40, EventType: "Conference"},
			wantRooms: []string{"Fő terem", "A konferenciaterem"},
		},
		{
			name: "booked room is excluded regardless of capacity",
			setup: func(f fixture) {
				seedBooking(f, "2025-06-01", "Bálterem")
			},
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 50, EventType: "wedding"},
			wantRooms: []string{"Fő terem"},
		},
		{
			name: "booking on another date does not block",
			setup: func(f fixture) {
				seedBooking(f, "2025-06-02", "Bálterem")
			},
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 50, EventType: "wedding"},
			wantRooms: []string{"Fő terem", "Bálterem"},
		},
		{
			name: "cancelled booking does not block",
			setup: func(f fixture) {
				parsed, _ := time.Parse(constant.BookingDateFormat, "2025-06-01")
				booking := ledgerModel.NewBooking(parsed, "Bálterem", "wedding", 10, "", "", "")
				booking.Status = ledgerModel.StatusCancelled
				f.ledger.Append(context.Background(), booking)
			},
			req:       dto.CheckRequest{Date: "2025-06-01", Headcount: 50, EventType: "wedding"},
			wantRooms: []string{"Fő terem", "Bálterem"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.service.Check(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRooms, res.AvailableRooms)
		})
	}
}

func TestAvailabilityService_CheckSingleRoomCatalog(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, room := range f.catalog.GetAll(ctx) {
		f.catalog.Delete(ctx, room.Name)
	}
	f.catalog.Upsert(ctx, catalogModel.Room{Name: "Main Hall", Capacity: 100, EventTypes: []string{"wedding"}})

	res, err := f.service.Check(ctx, dto.CheckRequest{Date: "2025-06-01", Headcount: 50, EventType: "wedding"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Main Hall"}, res.AvailableRooms)

	res, err = f.service.Check(ctx, dto.CheckRequest{Date: "2025-06-01", Headcount: 150, EventType: "wedding"})
	assert.NoError(t, err)
	assert.Empty(t, res.AvailableRooms)
}

func TestAvailabilityService_CheckMissingFields(t *testing.T) {
	f := newFixture()

	_, err := f.service.Check(context.Background(), dto.CheckRequest{Date: "2025-06-01"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Contains(t, err.Error(), "headcount")
	assert.Contains(t, err.Error(), "event type")
}

func TestAvailabilityService_CheckInvalidDate(t *testing.T) {
	f := newFixture()

	_, err := f.service.Check(context.Background(), dto.CheckRequest{Date: "junk", Headcount: 10, EventType: "wedding"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAvailabilityService_Reserve(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.service.Reserve(ctx, dto.ReserveRequest{
		Date:        "2025-06-01",
		Room:        "Fő terem",
		EventType:   "Wedding",
		Headcount:   80,
		ContactName: "Kiss Anna",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.BookingID)
	assert.Equal(t, ledgerModel.StatusConfirmed, res.Status)
	assert.Equal(t, 1, f.ledger.Count(ctx))

	select {
	case message := <-f.events.sent:
		assert.Equal(t, res.BookingID, message.Key)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a booking event to be published")
	}

	// The room is now blocked for that date.
	check, err := f.service.Check(ctx, dto.CheckRequest{Date: "2025-06-01", Headcount: 80, EventType: "wedding"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Bálterem"}, check.AvailableRooms)
}

func TestAvailabilityService_ReserveConcurrentSingleWinner(t *testing.T) {
	f := newFixture()

	req := dto.ReserveRequest{
		Date:      "2025-06-01",
		Room:      "Fő terem",
		EventType: "wedding",
		Headcount: 80,
	}

	var (
		wg        sync.WaitGroup
		reserved  atomic.Int32
		conflicts atomic.Int32
	)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.service.Reserve(context.Background(), req)
			if err == nil {
				reserved.Add(1)

				return
			}

			if failure.GetCode(err) == http.StatusConflict {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), reserved.Load())
	assert.Equal(t, int32(31), conflicts.Load())
	assert.Equal(t, 1, f.ledger.Count(context.Background()))
}

func TestAvailabilityService_ReserveErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		req      dto.ReserveRequest
		wantCode int
	}{
		{
			name:     "unknown room",
			req:      dto.ReserveRequest{Date: "2025-06-01", Room: "Nonexistent", EventType: "wedding", Headcount: 10},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unsupported event type",
			req:      dto.ReserveRequest{Date: "2025-06-01", Room: "A konferenciaterem", EventType: "wedding", Headcount: 10},
			wantCode: http.StatusConflict,
		},
		{
			name:     "headcount over capacity",
			req:      dto.ReserveRequest{Date: "2025-06-01", Room: "A konferenciaterem", EventType: "conference", Headcount: 80},
			wantCode: http.StatusConflict,
		},
		{
			name: "date already booked",
			setup: func(f fixture) {
				seedBooking(f, "2025-06-01", "Fő terem")
			},
			req:      dto.ReserveRequest{Date: "2025-06-01", Room: "Fő terem", EventType: "wedding", Headcount: 10},
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid date",
			req:      dto.ReserveRequest{Date: "June 1st", Room: "Fő terem", EventType: "wedding", Headcount: 10},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.service.Reserve(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
