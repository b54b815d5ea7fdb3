package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salesdesk/config"
	openaiMocks "salesdesk/infras/openai/mocks"
	otelMocks "salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/extract/lang"
	"salesdesk/internal/domains/extract/model"
	"salesdesk/internal/domains/extract/service"
	cacheMocks "salesdesk/shared/cache/mocks"
)

var errUpstream = errors.New("upstream unavailable")

type mocks struct {
	llm   *openaiMocks.MockOpenAI
	cache *cacheMocks.MockRedisCache
}

func newExtractor(t *testing.T) (service.Extractor, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m := mocks{
		llm:   openaiMocks.NewMockOpenAI(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	return service.New(m.llm, m.cache, cfg, otelMocks.NewOtel()), m
}

func cacheMiss(m mocks) {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()
}

func TestExtractorService_EnglishTextSkipsTranslation(t *testing.T) {
	svc, m := newExtractor(t)
	cacheMiss(m)

	// No Translate expectation: calling it would fail the test.
	m.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)

	text := "Hello, we would like to book a wedding on June 1, 2025 for 80 guests. Best regards, John Smith (john@example.com, +36 30 123 4567)"

	result := svc.Extract(context.Background(), text)

	assert.Equal(t, lang.English, result.Language)
	assert.Empty(t, result.Degraded)
	assert.Equal(t, "2025-06-01", *result.Date)
	assert.Equal(t, 80, *result.Headcount)
	assert.Equal(t, "wedding", *result.EventType)
	assert.Equal(t, "John Smith", *result.ContactName)
	assert.Equal(t, "john@example.com", *result.ContactEmail)
	assert.Equal(t, "+36 30 123 4567", *result.ContactPhone)
	assert.True(t, result.Complete())
	assert.Empty(t, result.Missing())
}

func TestExtractorService_HungarianTextIsTranslated(t *testing.T) {
	svc, m := newExtractor(t)
	cacheMiss(m)

	original := "Jó napot! Esküvőt szeretnénk 2025. 06. 01. napján, 120 fő részére. Üdvözlettel, Kiss Anna (anna@example.hu)"
	translated := "Good day! We would like a wedding on 2025-06-01 for 120 guests. Regards, Kiss Anna"

	m.llm.EXPECT().Translate(gomock.Any(), original, "English").Return(translated, nil)
	m.llm.EXPECT().
		Classify(gomock.Any(), translated, model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)

	result := svc.Extract(context.Background(), original)

	assert.Equal(t, lang.Hungarian, result.Language)
	assert.Empty(t, result.Degraded)

	// Date and headcount come from the translated text.
	assert.Equal(t, "2025-06-01", *result.Date)
	assert.Equal(t, 120, *result.Headcount)

	// Contact details come from the original text.
	assert.Equal(t, "Kiss Anna", *result.ContactName)
	assert.Equal(t, "anna@example.hu", *result.ContactEmail)
}

func TestExtractorService_TranslationFailureDegrades(t *testing.T) {
	svc, m := newExtractor(t)
	cacheMiss(m)

	original := "Esküvőt szeretnénk 2025. 06. 01. napján, 120 fő részére."

	m.llm.EXPECT().Translate(gomock.Any(), original, "English").Return("", errUpstream)
	m.llm.EXPECT().
		Classify(gomock.Any(), original, model.CandidateEventTypes).
		Return([]string{"wedding", "birthday", "conference", "corporate event"}, nil)

	result := svc.Extract(context.Background(), original)

	assert.Equal(t, []string{"translation"}, result.Degraded)

	// The pipeline falls back to the original text, where the patterns
	// still work.
	assert.Equal(t, "2025-06-01", *result.Date)
	assert.Equal(t, 120, *result.Headcount)
	assert.Equal(t, "wedding", *result.EventType)
}

func TestExtractorService_ClassificationFailureDegrades(t *testing.T) {
	svc, m := newExtractor(t)
	cacheMiss(m)

	m.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return(nil, errUpstream)

	result := svc.Extract(context.Background(), "A conference on 2025-06-01 for 45 attendees.")

	assert.Equal(t, []string{"event type classification"}, result.Degraded)
	assert.Nil(t, result.EventType)
	assert.Equal(t, "2025-06-01", *result.Date)
	assert.Equal(t, 45, *result.Headcount)
	assert.False(t, result.Complete())
	assert.Equal(t, []string{"event type"}, result.Missing())
}

func TestExtractorService_CachedClassificationSkipsModelCall(t *testing.T) {
	svc, m := newExtractor(t)

	// No Classify expectation: the cached label must short-circuit the call.
	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*string)) = "conference"

			return nil
		})

	result := svc.Extract(context.Background(), "A conference on 2025-06-01 for 45 attendees.")

	assert.Equal(t, "conference", *result.EventType)
	assert.Empty(t, result.Degraded)
}

func TestExtractorService_MissingFieldsReported(t *testing.T) {
	svc, m := newExtractor(t)
	cacheMiss(m)

	m.llm.EXPECT().
		Classify(gomock.Any(), gomock.Any(), model.CandidateEventTypes).
		Return([]string{"birthday", "wedding", "conference", "corporate event"}, nil)

	result := svc.Extract(context.Background(), "We want to celebrate a birthday soon.")

	assert.Nil(t, result.Date)
	assert.Nil(t, result.Headcount)
	assert.Equal(t, "birthday", *result.EventType)
	assert.Equal(t, []string{"date", "headcount"}, result.Missing())
}
