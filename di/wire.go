//go:build wireinject
// +build wireinject

package di

import (
	"salesdesk/config"
	"salesdesk/infras/jwt"
	"salesdesk/infras/kafka"
	"salesdesk/infras/openai"
	"salesdesk/infras/otel"
	"salesdesk/infras/postgres"
	"salesdesk/infras/redis"
	"salesdesk/infras/s3"
	"salesdesk/shared/cache"
	"salesdesk/transport/http"
	"salesdesk/transport/http/middleware"
	"salesdesk/transport/http/router"

	assistantService "salesdesk/internal/domains/assistant/service"
	authService "salesdesk/internal/domains/auth/service"
	availabilityService "salesdesk/internal/domains/availability/service"
	catalogRepository "salesdesk/internal/domains/catalog/repository"
	catalogService "salesdesk/internal/domains/catalog/service"
	composeService "salesdesk/internal/domains/compose/service"
	extractService "salesdesk/internal/domains/extract/service"
	ledgerRepository "salesdesk/internal/domains/ledger/repository"
	ledgerService "salesdesk/internal/domains/ledger/service"
	userRepository "salesdesk/internal/domains/user/repository"
	userService "salesdesk/internal/domains/user/service"

	assistantHandler "salesdesk/internal/handlers/assistant"
	authHandler "salesdesk/internal/handlers/auth"
	availabilityHandler "salesdesk/internal/handlers/availability"
	catalogHandler "salesdesk/internal/handlers/catalog"
	healthHandler "salesdesk/internal/handlers/health"
	ledgerHandler "salesdesk/internal/handlers/ledger"
	userHandler "salesdesk/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	openai.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	ledgerService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var pipelineDomain = wire.NewSet(
	extractService.New,
	composeService.New,
	assistantService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	ledgerDomain,
	availabilityDomain,
	pipelineDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	ledgerHandler.New,
	availabilityHandler.New,
	assistantHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
