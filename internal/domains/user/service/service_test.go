package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/user/model"
	userMocks "salesdesk/internal/domains/user/repository/mocks"
	"salesdesk/internal/domains/user/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
	gModel "salesdesk/shared/model"
	"salesdesk/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func testUser() model.User {
	return model.User{
		ID:       "user-id-123",
		Email:    "agent@example.com",
		FullName: stringPtr("Test Agent"),
		Role:     constant.RoleAgent,
		Tier:     constant.TierPremium,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("found", func(t *testing.T) {
		user := testUser()

		mockRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		res, err := svc.GetProfile(context.Background(), user.ID)

		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
		assert.Equal(t, "Test Agent", res.FullName)
		assert.Equal(t, constant.TierPremium, res.Tier)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(model.User{}, failure.NotFound(model.EntityName))

		_, err := svc.GetProfile(context.Background(), "ghost")

		assert.Error(t, err)
	})
}

func TestUserService_GetSubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	user := testUser()

	mockRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := svc.GetSubscriber(context.Background(), user.ID)

	assert.NoError(t, err)
	assert.True(t, got.CanInquire())
}

func TestUserService_UpdateTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().UpdateTier(gomock.Any(), "user-id-123", constant.TierEnterprise).Return(nil)

		assert.NoError(t, svc.UpdateTier(context.Background(), "user-id-123", constant.TierEnterprise))
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo.EXPECT().UpdateTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, svc.UpdateTier(context.Background(), "user-id-123", constant.TierFree))
	})
}

func TestUser_CanInquire(t *testing.T) {
	tests := []struct {
		name   string
		tier   string
		active bool
		want   bool
	}{
		{name: "active premium", tier: constant.TierPremium, active: true, want: true},
		{name: "active enterprise", tier: constant.TierEnterprise, active: true, want: true},
		{name: "active free", tier: constant.TierFree, active: true, want: false},
		{name: "inactive premium", tier: constant.TierPremium, active: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser()
			user.Tier = tt.tier
			user.Active = tt.active

			assert.Equal(t, tt.want, user.CanInquire())
		})
	}
}
