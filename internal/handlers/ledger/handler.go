package ledger

import (
	"io"
	"net/http"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/ledger/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Ledger
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Ledger, mw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/export", handler.Export)
		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Post("/import", handler.Import)
	})
}

// GetBookings lists the current ledger.
// @Summary Get all bookings
// @Description Retrieve every booking in the ledger in insertion order.
// @Tags Ledger
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res := handler.service.GetAll(ctx)

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Import replaces the ledger with an uploaded booking table.
// @Summary Import bookings
// @Description Replace the whole ledger with the uploaded CSV or JSON file. Admin only.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param format query string true "File format (csv or json)"
// @Success 200 {object} response.Data[dto.ImportResponse] "Import summary"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 415 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/import [post]
// @Security BearerAuth
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	format := r.URL.Query().Get(constant.RequestParamFormat)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodySize))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read import body")

		response.WithError(w, failure.BadRequestFromString("failed to read request body"))

		return
	}

	res, err := handler.service.Import(ctx, format, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings imported successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Export downloads the current ledger.
// @Summary Export bookings
// @Description Download the whole ledger as a CSV or JSON file.
// @Tags Ledger
// @Accept json
// @Produce octet-stream
// @Param format query string true "File format (csv or json)"
// @Success 200 {file} file "Exported ledger"
// @Failure 401 {object} response.Error
// @Failure 415 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	format := r.URL.Query().Get(constant.RequestParamFormat)

	data, contentType, err := handler.service.Export(ctx, format)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported successfully")

	response.WithFile(w, contentType, "bookings."+format, data)
}
