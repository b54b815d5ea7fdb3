package service

import (
	"context"
	"fmt"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/catalog/model/dto"
	"salesdesk/internal/domains/catalog/repository"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	AddRoom(ctx context.Context, req dto.AddRoomRequest) error
	Get(ctx context.Context, name string) (dto.RoomResponse, error)
	GetAll(ctx context.Context) dto.GetRoomsResponse
	Delete(ctx context.Context, name string) error
	CapacityOf(ctx context.Context, name string) (int, error)
	Supports(ctx context.Context, name, eventType string) (bool, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, ot otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) AddRoom(ctx context.Context, req dto.AddRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := req.ToModel()

	if room.Capacity <= 0 {
		return failure.BadRequestFromString(fmt.Sprintf("room capacity must be positive, got %d", room.Capacity))
	}

	if room.Name == constant.Empty {
		return failure.BadRequestFromString("room name is required")
	}

	s.repo.Upsert(ctx, room)

	log.Info().Str("room", room.Name).Int("capacity", room.Capacity).Msg("room added to catalog")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.repo.Get(ctx, name)
	if !ok {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.GetAll(ctx))

	return res
}

func (s *serviceImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.repo.Delete(ctx, name) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	log.Info().Str("room", name).Msg("room removed from catalog")

	return nil
}

func (s *serviceImpl) CapacityOf(ctx context.Context, name string) (capacity int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CapacityOf")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.repo.Get(ctx, name)
	if !ok {
		return 0, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room.Capacity, nil
}

func (s *serviceImpl) Supports(ctx context.Context, name, eventType string) (supports bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supports")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.repo.Get(ctx, name)
	if !ok {
		return false, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room.Supports(eventType), nil
}
