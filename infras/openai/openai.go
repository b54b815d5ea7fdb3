package openai

//go:generate go run go.uber.org/mock/mockgen -source=./openai.go -destination=./mocks/openai_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"salesdesk/config"
	"salesdesk/infras/otel"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/rs/zerolog/log"
	goOpenai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	defaultModel          = "gpt-4o-mini"
	defaultTimeoutSeconds = 30
	defaultMaxRetries     = 2
	defaultRPS            = 3
	defaultBurst          = 5

	// Longer prompts get proportionally more time per attempt.
	promptLenPerExtraSecond = 500
)

// OpenAI is the boundary to the language-model service. Translation,
// classification and reply drafting all go through here; callers treat them
// as opaque, fallible operations.
type OpenAI interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Classify(ctx context.Context, text string, candidateLabels []string) ([]string, error)
	Generate(ctx context.Context, prompt string) (string, error)
}

type clientImpl struct {
	client     *goOpenai.Client
	cfg        *config.Config
	otel       otel.Otel
	limiter    *rate.Limiter
	model      string
	timeout    time.Duration
	maxRetries int
}

func New(cfg *config.Config, ot otel.Otel) OpenAI {
	model := cfg.External.OpenAI.Model
	if model == constant.Empty {
		model = defaultModel
	}

	timeoutSeconds := cfg.External.OpenAI.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}

	maxRetries := cfg.External.OpenAI.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	rps := cfg.External.OpenAI.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}

	burst := cfg.External.OpenAI.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	log.Info().Str("model", model).Msg("OpenAI client initialized")

	return &clientImpl{
		client:     goOpenai.NewClient(cfg.External.OpenAI.APIKey),
		cfg:        cfg,
		otel:       ot,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		model:      model,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
		maxRetries: maxRetries,
	}
}

func (c *clientImpl) Translate(ctx context.Context, text, targetLanguage string) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Translate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("openai.target_language", targetLanguage)

	systemPrompt := "You are a translation engine. Translate the user's text into the requested language. " +
		"Preserve numbers, dates, names, email addresses and phone numbers exactly as written. " +
		"Return only the translated text, nothing else."

	userPrompt := fmt.Sprintf("Target language: %s\n\nText:\n%s", targetLanguage, text)

	res, err = c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return constant.Empty, failure.ExternalService("translation", err) //nolint:wrapcheck
	}

	return strings.TrimSpace(res), nil
}

type classifyResponse struct {
	Labels []string `json:"labels"`
}

func (c *clientImpl) Classify(ctx context.Context, text string, candidateLabels []string) (res []string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Classify")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("openai.candidate_labels", candidateLabels)

	systemPrompt := "You are a zero-shot text classifier. Rank the candidate labels from most to least " +
		"applicable to the user's text. Respond with a JSON object of the form " +
		`{"labels": ["most applicable", "..."]} using only the given labels. ` +
		"Your response MUST be valid JSON and nothing else."

	userPrompt := fmt.Sprintf("Candidate labels: %s\n\nText:\n%s", strings.Join(candidateLabels, ", "), text)

	raw, err := c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, failure.ExternalService("classification", err) //nolint:wrapcheck
	}

	var parsed classifyResponse
	if err = json.Unmarshal([]byte(cleanJSON(raw)), &parsed); err != nil {
		log.Error().Err(err).Str("response", raw).Msg("failed to parse classifier response")

		return nil, failure.ExternalService("classification", fmt.Errorf("unparseable response: %w", err)) //nolint:wrapcheck
	}

	// Discard anything the model invented outside the candidate set.
	ranked := make([]string, 0, len(parsed.Labels))
	for _, label := range parsed.Labels {
		for _, candidate := range candidateLabels {
			if strings.EqualFold(label, candidate) {
				ranked = append(ranked, candidate)
				break
			}
		}
	}

	if len(ranked) == 0 {
		return nil, failure.ExternalService("classification", fmt.Errorf("no candidate label in response")) //nolint:wrapcheck
	}

	return ranked, nil
}

func (c *clientImpl) Generate(ctx context.Context, prompt string) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	systemPrompt := "You are an assistant for a venue sales team. Draft concise, polite replies to " +
		"customer booking inquiries in the customer's language."

	res, err = c.complete(ctx, systemPrompt, prompt)
	if err != nil {
		return constant.Empty, failure.ExternalService("generation", err) //nolint:wrapcheck
	}

	return strings.TrimSpace(res), nil
}

func (c *clientImpl) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	timeout := c.timeout + time.Duration(len(userPrompt)/promptLenPerExtraSecond)*time.Second

	var resp goOpenai.ChatCompletionResponse
	var err error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err = c.limiter.Wait(ctx); err != nil {
			return constant.Empty, fmt.Errorf("rate limiter wait: %w", err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)

		resp, err = c.client.CreateChatCompletion(attemptCtx, goOpenai.ChatCompletionRequest{
			Model: c.model,
			Messages: []goOpenai.ChatCompletionMessage{
				{
					Role:    goOpenai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    goOpenai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.1,
		})

		cancel()

		if err == nil && len(resp.Choices) > 0 {
			return resp.Choices[0].Message.Content, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("OpenAI API call failed")

		if attempt < c.maxRetries {
			backoff := time.Duration(attempt)*time.Second + time.Duration(rand.Intn(1000))*time.Millisecond

			select {
			case <-ctx.Done():
				return constant.Empty, fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}
	}

	if err == nil {
		err = fmt.Errorf("empty completion response")
	}

	return constant.Empty, fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries, err)
}

// cleanJSON strips markdown code fences some models wrap around JSON output.
func cleanJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}
