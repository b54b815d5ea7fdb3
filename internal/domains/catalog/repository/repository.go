package repository

import (
	"context"
	"sync"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/catalog/model"
	"salesdesk/shared/constant"
)

// Catalog is the room catalog. Room names are unique keys; iteration keeps
// insertion order because callers display the result directly.
type Catalog interface {
	Upsert(ctx context.Context, room model.Room)
	Get(ctx context.Context, name string) (model.Room, bool)
	GetAll(ctx context.Context) []model.Room
	Delete(ctx context.Context, name string) bool
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	mu    sync.RWMutex
	order []string
	rooms map[string]model.Room
	otel  otel.Otel
}

func New(ot otel.Otel) Catalog {
	repo := &repositoryImpl{
		rooms: make(map[string]model.Room),
		otel:  ot,
	}

	for _, room := range model.DefaultRooms() {
		repo.Upsert(context.Background(), room)
	}

	return repo
}

func (r *repositoryImpl) Upsert(ctx context.Context, room model.Room) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Upsert")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.Name]; !exists {
		r.order = append(r.order, room.Name)
	}

	r.rooms[room.Name] = room
}

func (r *repositoryImpl) Get(ctx context.Context, name string) (model.Room, bool) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[name]

	return room, ok
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.Room {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]model.Room, 0, len(r.order))
	for _, name := range r.order {
		rooms = append(rooms, r.rooms[name])
	}

	return rooms
}

func (r *repositoryImpl) Delete(ctx context.Context, name string) bool {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[name]; !ok {
		return false
	}

	delete(r.rooms, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true
}

func (r *repositoryImpl) Count(ctx context.Context) int {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
