package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"salesdesk/infras/openai"
	"salesdesk/infras/otel"
	assistantDTO "salesdesk/internal/domains/assistant/model/dto"
	availabilityDTO "salesdesk/internal/domains/availability/model/dto"
	availabilityService "salesdesk/internal/domains/availability/service"
	composeService "salesdesk/internal/domains/compose/service"
	extractService "salesdesk/internal/domains/extract/service"
	userService "salesdesk/internal/domains/user/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const stepReplyDrafting = "reply drafting"

// Assistant runs the full inquiry pipeline: subscription gate, extraction,
// availability check, reply composition.
type Assistant interface {
	Inquire(ctx context.Context, userID string, req assistantDTO.InquiryRequest) (assistantDTO.InquiryResponse, error)
}

type serviceImpl struct {
	users        userService.User
	extractor    extractService.Extractor
	availability availabilityService.Availability
	composer     composeService.Composer
	llm          openai.OpenAI
	otel         otel.Otel
}

func New(
	users userService.User,
	extractor extractService.Extractor,
	availability availabilityService.Availability,
	composer composeService.Composer,
	llm openai.OpenAI,
	ot otel.Otel,
) Assistant {
	return &serviceImpl{
		users:        users,
		extractor:    extractor,
		availability: availability,
		composer:     composer,
		llm:          llm,
		otel:         ot,
	}
}

// Inquire turns one inquiry text into a reply. Incomplete extraction is not
// an error: the partial result comes back with the missing field names so the
// agent can ask the customer for them.
func (s *serviceImpl) Inquire(ctx context.Context, userID string, req assistantDTO.InquiryRequest) (res assistantDTO.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquire")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.users.GetSubscriber(ctx, userID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			// No subscription record means no access.
			return res, failure.InsufficientSubscription("none") //nolint:wrapcheck
		}

		return res, err
	}

	if !user.CanInquire() {
		return res, failure.InsufficientSubscription(user.Tier) //nolint:wrapcheck
	}

	res.Extracted = s.extractor.Extract(ctx, req.Text)

	res.Missing = res.Extracted.Missing()
	if len(res.Missing) > 0 {
		log.Info().Strs("missing", res.Missing).Msg("inquiry extraction incomplete")

		return res, nil
	}

	checkResult, err := s.availability.Check(ctx, availabilityDTO.CheckRequest{
		Date:      *res.Extracted.Date,
		Headcount: *res.Extracted.Headcount,
		EventType: *res.Extracted.EventType,
	})
	if err != nil {
		return res, err
	}

	res.AvailableRooms = checkResult.AvailableRooms
	res.Available = len(checkResult.AvailableRooms) > 0

	res.Reply = s.composer.Compose(ctx, res.Available, res.AvailableRooms, res.Extracted.Language)

	if req.Draft {
		if drafted, draftErr := s.draftReply(ctx, req.Text, res); draftErr != nil {
			log.Warn().Err(draftErr).Msg("reply drafting failed, falling back to template")

			res.Extracted.Degraded = append(res.Extracted.Degraded, stepReplyDrafting)
		} else {
			res.Reply = drafted
		}
	}

	return res, nil
}

func (s *serviceImpl) draftReply(ctx context.Context, inquiry string, res assistantDTO.InquiryResponse) (string, error) {
	var availability string
	if res.Available {
		availability = "Available rooms: " + strings.Join(res.AvailableRooms, ", ")
	} else {
		availability = "No rooms are available for the requested date, headcount and event type."
	}

	prompt := fmt.Sprintf(
		"Customer inquiry:\n%s\n\nAvailability result:\n%s\n\nDraft a reply in language code %q.",
		inquiry, availability, res.Extracted.Language)

	return s.llm.Generate(ctx, prompt) //nolint:wrapcheck
}
