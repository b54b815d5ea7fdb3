package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/ledger/model"
	"salesdesk/internal/domains/ledger/repository"
	"salesdesk/shared/constant"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse(constant.BookingDateFormat, value)
	assert.NoError(t, err)

	return date
}

func booking(t *testing.T, date, room, status string) model.Booking {
	t.Helper()

	return model.Booking{
		ID:        uuid.New(),
		Date:      mustDate(t, date),
		Room:      room,
		EventType: "wedding",
		Headcount: 40,
		Status:    status,
	}
}

func TestLedgerRepository_BookingsOn(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	repo.Append(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed))
	repo.Append(ctx, booking(t, "2025-06-01", "Bálterem", model.StatusPending))
	repo.Append(ctx, booking(t, "2025-06-02", "Fő terem", model.StatusConfirmed))

	matches := repo.BookingsOn(ctx, mustDate(t, "2025-06-01"), "Fő terem")
	assert.Len(t, matches, 1)
	assert.Equal(t, "Fő terem", matches[0].Room)

	matches = repo.BookingsOn(ctx, mustDate(t, "2025-06-03"), "Fő terem")
	assert.Empty(t, matches)
}

func TestLedgerRepository_CancelledNeverBlocks(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	repo.Append(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusCancelled))

	matches := repo.BookingsOn(ctx, mustDate(t, "2025-06-01"), "Fő terem")
	assert.Empty(t, matches)

	// Still part of the ledger even though it does not block.
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestLedgerRepository_AppendIfFree(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	assert.True(t, repo.AppendIfFree(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed)))
	assert.False(t, repo.AppendIfFree(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed)))

	// A cancelled entry does not block, so the slot stays free.
	assert.True(t, repo.AppendIfFree(ctx, booking(t, "2025-06-02", "Bálterem", model.StatusCancelled)))
	assert.True(t, repo.AppendIfFree(ctx, booking(t, "2025-06-02", "Bálterem", model.StatusConfirmed)))

	assert.Equal(t, 3, repo.Count(ctx))
}

func TestLedgerRepository_AppendIfFreeSingleWinner(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if repo.AppendIfFree(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed)) {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestLedgerRepository_ReplaceAll(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	repo.Append(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed))
	repo.Append(ctx, booking(t, "2025-06-02", "Bálterem", model.StatusConfirmed))

	replacement := []model.Booking{booking(t, "2025-07-10", "A konferenciaterem", model.StatusPending)}
	repo.ReplaceAll(ctx, replacement)

	all := repo.All(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "A konferenciaterem", all[0].Room)
}

func TestLedgerRepository_AllReturnsCopy(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	repo.Append(ctx, booking(t, "2025-06-01", "Fő terem", model.StatusConfirmed))

	all := repo.All(ctx)
	all[0].Room = "mutated"

	assert.Equal(t, "Fő terem", repo.All(ctx)[0].Room)
}

func TestBooking_Blocks(t *testing.T) {
	entry := booking(t, "2025-06-01", "Fő terem", model.StatusPending)

	assert.True(t, entry.Blocks(mustDate(t, "2025-06-01"), "Fő terem"))
	assert.False(t, entry.Blocks(mustDate(t, "2025-06-01"), "Bálterem"))
	assert.False(t, entry.Blocks(mustDate(t, "2025-06-02"), "Fő terem"))
}
