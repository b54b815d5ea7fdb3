package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salesdesk/config"
	"salesdesk/infras/kafka"
	openaiMocks "salesdesk/infras/openai/mocks"
	otelMocks "salesdesk/infras/otel/mocks"
	assistantDTO "salesdesk/internal/domains/assistant/model/dto"
	"salesdesk/internal/domains/assistant/service"
	availabilityService "salesdesk/internal/domains/availability/service"
	catalogRepository "salesdesk/internal/domains/catalog/repository"
	composeService "salesdesk/internal/domains/compose/service"
	"salesdesk/internal/domains/extract/model"
	extractService "salesdesk/internal/domains/extract/service"
	ledgerRepository "salesdesk/internal/domains/ledger/repository"
	userModel "salesdesk/internal/domains/user/model"
	userMocks "salesdesk/internal/domains/user/repository/mocks"
	userService "salesdesk/internal/domains/user/service"
	cacheMocks "salesdesk/shared/cache/mocks"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
)

type nullPublisher struct{}

func (nullPublisher) SendMessages(context.Context, string, ...kafka.Message) error {
	return nil
}

type fixture struct {
	service  service.Assistant
	userRepo *userMocks.MockUser
	llm      *openaiMocks.MockOpenAI
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	userRepo := userMocks.NewMockUser(ctrl)
	llm := openaiMocks.NewMockOpenAI(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	users := userService.New(userRepo, mockOtel)
	extractor := extractService.New(llm, redisCache, cfg, mockOtel)
	availability := availabilityService.New(
		catalogRepository.New(mockOtel), ledgerRepository.New(mockOtel), nullPublisher{}, cfg, mockOtel)
	composer := composeService.New(mockOtel)

	return fixture{
		service:  service.New(users, extractor, availability, composer, llm, mockOtel),
		userRepo: userRepo,
		llm:      llm,
		cache:    redisCache,
	}
}

func premiumUser() userModel.User {
	return userModel.User{
		ID:     "user-1",
		Email:  "agent@example.com",
		Role:   constant.RoleAgent,
		Tier:   constant.TierPremium,
		Active: true,
	}
}

func (f fixture) expectCacheMisses() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()
}

const completeInquiry = "Hello, we would like to book a wedding on June 1, 2025 for 80 guests."

func TestAssistantService_InquireMissingUserIsDenied(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(userModel.User{}, failure.NotFound(userModel.EntityName))

	_, err := f.service.Inquire(context.Background(), "ghost", assistantDTO.InquiryRequest{Text: completeInquiry})

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.Contains(t, err.Error(), "none")
}

func TestAssistantService_InquireFreeTierIsDenied(t *testing.T) {
	f := newFixture(t)

	freeUser := premiumUser()
	freeUser.Tier = constant.TierFree

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(freeUser, nil)

	_, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: completeInquiry})

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.Contains(t, err.Error(), constant.TierFree)
}

func TestAssistantService_InquireInactiveUserIsDenied(t *testing.T) {
	f := newFixture(t)

	inactive := premiumUser()
	inactive.Active = false

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(inactive, nil)

	_, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: completeInquiry})

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestAssistantService_InquireCompleteFlow(t *testing.T) {
	f := newFixture(t)
	f.expectCacheMisses()

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(premiumUser(), nil)
	f.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)

	res, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: completeInquiry})

	assert.NoError(t, err)
	assert.Empty(t, res.Missing)
	assert.True(t, res.Available)
	assert.Equal(t, []string{"Fő terem", "Bálterem"}, res.AvailableRooms)
	assert.Contains(t, res.Reply, "Fő terem, Bálterem")
}

func TestAssistantService_InquireIncompleteExtractionIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.expectCacheMisses()

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(premiumUser(), nil)
	f.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"birthday", "wedding", "conference", "corporate event"}, nil)

	res, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: "We want a birthday party soon."})

	assert.NoError(t, err)
	assert.Equal(t, []string{"date", "headcount"}, res.Missing)
	assert.Empty(t, res.Reply)
	assert.False(t, res.Available)
}

func TestAssistantService_InquireDraftReply(t *testing.T) {
	f := newFixture(t)
	f.expectCacheMisses()

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(premiumUser(), nil)
	f.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)
	f.llm.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("Dear guest, both our halls are free that day.", nil)

	res, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: completeInquiry, Draft: true})

	assert.NoError(t, err)
	assert.Equal(t, "Dear guest, both our halls are free that day.", res.Reply)
	assert.Empty(t, res.Extracted.Degraded)
}

func TestAssistantService_InquireDraftFailureFallsBackToTemplate(t *testing.T) {
	f := newFixture(t)
	f.expectCacheMisses()

	f.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(premiumUser(), nil)
	f.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)
	f.llm.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("model overloaded"))

	res, err := f.service.Inquire(context.Background(), "user-1", assistantDTO.InquiryRequest{Text: completeInquiry, Draft: true})

	assert.NoError(t, err)
	assert.Contains(t, res.Reply, "Good news!")
	assert.Contains(t, res.Extracted.Degraded, "reply drafting")
}
