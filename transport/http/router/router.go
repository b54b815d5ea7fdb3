package router

import (
	"salesdesk/internal/handlers/assistant"
	"salesdesk/internal/handlers/auth"
	"salesdesk/internal/handlers/availability"
	"salesdesk/internal/handlers/catalog"
	"salesdesk/internal/handlers/health"
	"salesdesk/internal/handlers/ledger"
	"salesdesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	User         user.Handler
	Catalog      catalog.Handler
	Ledger       ledger.Handler
	Availability availability.Handler
	Assistant    assistant.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Assistant.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
