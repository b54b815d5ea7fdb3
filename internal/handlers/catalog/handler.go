package catalog

import (
	"net/http"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/catalog/model/dto"
	"salesdesk/internal/domains/catalog/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/validator"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Catalog
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Catalog, mw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{name}", handler.GetRoom)
		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Post("/", handler.AddRoom)
		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Delete("/{name}", handler.DeleteRoom)
	})
}

// AddRoom inserts or replaces a room in the catalog.
// @Summary Add a room
// @Description Insert or replace a room with its capacity and supported event types. Admin only.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.AddRoomRequest true "Add Room Request"
// @Success 201 {object} response.Message "Room added successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	req := dto.AddRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddRoom(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room added successfully")

	response.WithMessage(w, http.StatusCreated, "Room added successfully")
}

// GetRooms lists the whole catalog.
// @Summary Get all rooms
// @Description Retrieve the room catalog in insertion order.
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res := handler.service.GetAll(ctx)

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoom retrieves a single room by name.
// @Summary Get a room
// @Description Retrieve one room by its unique name.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{name} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	res, err := handler.service.Get(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRoom removes a room from the catalog.
// @Summary Delete a room
// @Description Remove a room by its unique name. Admin only.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{name} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	if err := handler.service.Delete(ctx, name); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
