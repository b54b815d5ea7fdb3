package service

import (
	"context"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/user/model"
	"salesdesk/internal/domains/user/model/dto"
	"salesdesk/internal/domains/user/repository"
	"salesdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type User interface {
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	GetSubscriber(ctx context.Context, userID string) (model.User, error)
	UpdateTier(ctx context.Context, userID, tier string) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, ot otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

// GetSubscriber loads the user backing a subscription check. Callers decide
// what the tier allows.
func (s *serviceImpl) GetSubscriber(ctx context.Context, userID string) (user model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSubscriber")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.GetByID(ctx, userID)
}

func (s *serviceImpl) UpdateTier(ctx context.Context, userID, tier string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTier")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.UpdateTier(ctx, userID, tier); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Str("tier", tier).Msg("subscription tier updated")

	return nil
}
