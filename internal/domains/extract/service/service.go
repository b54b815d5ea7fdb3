package service

import (
	"context"

	"salesdesk/config"
	"salesdesk/infras/openai"
	"salesdesk/infras/otel"
	"salesdesk/internal/domains/extract/lang"
	"salesdesk/internal/domains/extract/model"
	"salesdesk/internal/domains/extract/rules"
	"salesdesk/shared"
	"salesdesk/shared/cache"
	"salesdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyTranslate = "salesdesk:extract:translate"
	cacheKeyClassify  = "salesdesk:extract:classify"

	stepTranslation    = "translation"
	stepClassification = "event type classification"
)

// Extractor turns raw inquiry text into a structured event request.
type Extractor interface {
	Extract(ctx context.Context, rawText string) model.ExtractedRequest
}

type serviceImpl struct {
	llm    openai.OpenAI
	cache  cache.RedisCache
	config *config.Config
	otel   otel.Otel
}

func New(llm openai.OpenAI, redisCache cache.RedisCache, conf *config.Config, ot otel.Otel) Extractor {
	return &serviceImpl{
		llm:    llm,
		cache:  redisCache,
		config: conf,
		otel:   ot,
	}
}

// Extract runs the fixed pipeline: detect language, translate to the pivot
// language, match the pattern rules, classify the event type. Every step
// tolerates a no-match; failed external calls are recorded in Degraded and
// the partial result is returned.
func (s *serviceImpl) Extract(ctx context.Context, rawText string) model.ExtractedRequest {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Extract")
	defer scope.End()

	result := model.ExtractedRequest{
		Language: lang.Detect(rawText),
		Degraded: make([]string, 0),
	}

	scope.SetAttribute("extract.language", result.Language)

	pivotText := rawText

	if result.Language != lang.Pivot {
		translated, err := s.translate(ctx, rawText)
		if err != nil {
			log.Warn().Err(err).Str("language", result.Language).Msg("translation failed, extracting from original text")

			result.Degraded = append(result.Degraded, stepTranslation)
		} else {
			pivotText = translated
		}
	}

	if date, ok := rules.FirstMatch(rules.DateRules(), pivotText); ok {
		result.Date = &date
	}

	if headcount, ok := rules.ExtractHeadcount(pivotText); ok {
		result.Headcount = &headcount
	}

	// Contact details always come from the original text so translation
	// cannot corrupt proper nouns or addresses.
	if email, ok := rules.ExtractEmail(rawText); ok {
		result.ContactEmail = &email
	}

	if phone, ok := rules.ExtractPhone(rawText); ok {
		result.ContactPhone = &phone
	}

	if name, ok := rules.ExtractName(rawText); ok {
		result.ContactName = &name
	}

	eventType, err := s.classify(ctx, pivotText)
	if err != nil {
		log.Warn().Err(err).Msg("event type classification failed")

		result.Degraded = append(result.Degraded, stepClassification)
	} else {
		result.EventType = &eventType
	}

	return result
}

func (s *serviceImpl) translate(ctx context.Context, text string) (string, error) {
	cacheKey := shared.BuildCacheKey(cacheKeyTranslate, lang.Pivot, shared.HashText(text))

	var cached string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached != constant.Empty {
		return cached, nil
	}

	translated, err := s.llm.Translate(ctx, text, "English")
	if err != nil {
		return constant.Empty, err
	}

	if err := s.cache.Save(ctx, cacheKey, translated, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache translation")
	}

	return translated, nil
}

func (s *serviceImpl) classify(ctx context.Context, text string) (string, error) {
	cacheKey := shared.BuildCacheKey(cacheKeyClassify, shared.HashText(text))

	var cached string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached != constant.Empty {
		return cached, nil
	}

	ranked, err := s.llm.Classify(ctx, text, model.CandidateEventTypes)
	if err != nil {
		return constant.Empty, err
	}

	top := ranked[0]

	if err := s.cache.Save(ctx, cacheKey, top, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache classification")
	}

	return top, nil
}
