package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/catalog/model"
	"salesdesk/internal/domains/catalog/repository"
)

func TestCatalogRepository_SeedsDefaultRooms(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	rooms := repo.GetAll(ctx)

	assert.Len(t, rooms, 3)
	assert.Equal(t, "Fő terem", rooms[0].Name)
	assert.Equal(t, "A konferenciaterem", rooms[1].Name)
	assert.Equal(t, "Bálterem", rooms[2].Name)

	assert.Equal(t, 100, rooms[0].Capacity)
	assert.Equal(t, 50, rooms[1].Capacity)
	assert.Equal(t, 150, rooms[2].Capacity)
}

func TestCatalogRepository_UpsertPreservesInsertionOrder(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	repo.Upsert(ctx, model.Room{Name: "Garden Pavilion", Capacity: 80, EventTypes: []string{"wedding"}})

	rooms := repo.GetAll(ctx)
	assert.Len(t, rooms, 4)
	assert.Equal(t, "Garden Pavilion", rooms[3].Name)

	// Replacing an existing room keeps its original position.
	repo.Upsert(ctx, model.Room{Name: "Fő terem", Capacity: 120, EventTypes: []string{"wedding"}})

	rooms = repo.GetAll(ctx)
	assert.Len(t, rooms, 4)
	assert.Equal(t, "Fő terem", rooms[0].Name)
	assert.Equal(t, 120, rooms[0].Capacity)
}

func TestCatalogRepository_GetAndDelete(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	room, ok := repo.Get(ctx, "Bálterem")
	assert.True(t, ok)
	assert.Equal(t, 150, room.Capacity)

	_, ok = repo.Get(ctx, "Nonexistent")
	assert.False(t, ok)

	assert.True(t, repo.Delete(ctx, "Bálterem"))
	assert.False(t, repo.Delete(ctx, "Bálterem"))
	assert.Equal(t, 2, repo.Count(ctx))

	_, ok = repo.Get(ctx, "Bálterem")
	assert.False(t, ok)
}

func TestRoom_Supports(t *testing.T) {
	room := model.Room{Name: "Fő terem", Capacity: 100, EventTypes: []string{"wedding", "conference"}}

	assert.True(t, room.Supports("wedding"))
	assert.True(t, room.Supports("Wedding"))
	assert.False(t, room.Supports("birthday"))
}
