package repository

import (
	"context"
	"sync"
	"time"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/ledger/model"
	"salesdesk/shared/constant"
)

// Ledger stores bookings in memory, preserving insertion order. All methods
// are safe for concurrent use.
type Ledger interface {
	Append(ctx context.Context, booking model.Booking)
	// AppendIfFree appends the booking only when no stored booking blocks its
	// date and room. The check and the append happen in one critical section.
	AppendIfFree(ctx context.Context, booking model.Booking) bool
	ReplaceAll(ctx context.Context, bookings []model.Booking)
	BookingsOn(ctx context.Context, date time.Time, room string) []model.Booking
	All(ctx context.Context) []model.Booking
	Count(ctx context.Context) int
}

type ledgerImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	otel     otel.Otel
}

func New(ot otel.Otel) Ledger {
	return &ledgerImpl{
		bookings: make([]model.Booking, 0),
		otel:     ot,
	}
}

func (l *ledgerImpl) Append(ctx context.Context, booking model.Booking) {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Append")
	defer scope.End()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = append(l.bookings, booking)
}

func (l *ledgerImpl) AppendIfFree(ctx context.Context, booking model.Booking) bool {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AppendIfFree")
	defer scope.End()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.bookings {
		if existing.Blocks(booking.Date, booking.Room) {
			return false
		}
	}

	l.bookings = append(l.bookings, booking)

	return true
}

func (l *ledgerImpl) ReplaceAll(ctx context.Context, bookings []model.Booking) {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReplaceAll")
	defer scope.End()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = make([]model.Booking, len(bookings))
	copy(l.bookings, bookings)
}

func (l *ledgerImpl) BookingsOn(ctx context.Context, date time.Time, room string) []model.Booking {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".BookingsOn")
	defer scope.End()

	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := make([]model.Booking, 0)
	for _, booking := range l.bookings {
		if booking.Blocks(date, room) {
			matches = append(matches, booking)
		}
	}

	return matches
}

func (l *ledgerImpl) All(ctx context.Context) []model.Booking {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".All")
	defer scope.End()

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Booking, len(l.bookings))
	copy(out, l.bookings)

	return out
}

func (l *ledgerImpl) Count(ctx context.Context) int {
	_, scope := l.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()

	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.bookings)
}
