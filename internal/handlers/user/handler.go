package user

import (
	"net/http"

	"salesdesk/infras/otel"
	authDTO "salesdesk/internal/domains/auth/model/dto"
	authService "salesdesk/internal/domains/auth/service"
	"salesdesk/internal/domains/user/model/dto"
	"salesdesk/internal/domains/user/service"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
	"salesdesk/shared/validator"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.User
	authService authService.Auth
	middleware  middleware.AuthRole
	otel        otel.Otel
}

func New(service service.User, auth authService.Auth, mw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		authService: auth,
		middleware:  mw,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Get("/me", handler.Me)
		routerGroup.Post("/me/change-password", handler.ChangePassword)
		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Patch("/{id}/tier", handler.UpdateTier)
	})
}

// Me returns the authenticated user's profile.
// @Summary Get own profile
// @Description Retrieve the profile and subscription tier of the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	user, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// ChangePassword updates the authenticated user's password.
// @Summary Change own password
// @Description Change the authenticated user's password after verifying the current one.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authDTO.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	req := authDTO.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.authService.ChangePassword(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// UpdateTier sets a user's subscription tier.
// @Summary Update a user's subscription tier
// @Description Set the subscription tier of a user. Admin only.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateTierRequest true "Update Tier Request"
// @Success 200 {object} response.Message "Tier updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id}/tier [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTier")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTierRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTier(ctx, id, req.Tier); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tier updated successfully")

	response.WithMessage(w, http.StatusOK, "Tier updated successfully")
}
