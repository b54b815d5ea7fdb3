package availability

import (
	"net/http"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/availability/model/dto"
	"salesdesk/internal/domains/availability/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/validator"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Availability
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Availability, mw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/check", handler.Check)
		routerGroup.Post("/reserve", handler.Reserve)
	})
}

// Check returns the rooms available for a date, headcount and event type.
// @Summary Check availability
// @Description List the rooms that can host the requested event on the requested date.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CheckRequest true "Check Request"
// @Success 200 {object} response.Data[dto.CheckResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/check [post]
// @Security BearerAuth
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Check")
	defer scope.End()

	req := dto.CheckRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Reserve books a specific room for a date.
// @Summary Reserve a room
// @Description Re-validate availability for one room and append a confirmed booking to the ledger.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.ReserveRequest true "Reserve Request"
// @Success 201 {object} response.Data[dto.ReserveResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/reserve [post]
// @Security BearerAuth
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.ReserveRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room reserved successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
