package assistant

import (
	"net/http"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/assistant/model/dto"
	"salesdesk/internal/domains/assistant/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
	"salesdesk/shared/validator"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Assistant
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Assistant, mw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/inquiries", handler.Inquire)
	})
}

// Inquire runs the inquiry pipeline on a customer email.
// @Summary Process a customer inquiry
// @Description Extract the event request from free text, check room availability and compose a localized reply.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Inquiry Request"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry result"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assistant/inquiries [post]
// @Security BearerAuth
func (handler *Handler) Inquire(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Inquire")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	req := dto.InquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Inquire(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry processed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
