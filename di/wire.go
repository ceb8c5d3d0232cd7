//go:build wireinject
// +build wireinject

package di

import (
	"salas/config"
	"salas/infras/jwt"
	"salas/infras/kafka"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/infras/redis"
	"salas/permissions"
	"salas/shared/cache"
	"salas/shared/timezone"
	"salas/transport/http"
	"salas/transport/http/middleware"
	"salas/transport/http/router"

	availabilityService "salas/internal/domains/availability/service"
	blackoutRepository "salas/internal/domains/blackout/repository"
	blackoutService "salas/internal/domains/blackout/service"
	materialRepository "salas/internal/domains/material/repository"
	profileRepository "salas/internal/domains/profile/repository"
	profileService "salas/internal/domains/profile/service"
	reservationRepository "salas/internal/domains/reservation/repository"
	reservationService "salas/internal/domains/reservation/service"
	roomRepository "salas/internal/domains/room/repository"
	roomService "salas/internal/domains/room/service"
	ruleRepository "salas/internal/domains/rule/repository"
	ruleService "salas/internal/domains/rule/service"
	timeBlockRepository "salas/internal/domains/timeblock/repository"
	timeBlockService "salas/internal/domains/timeblock/service"

	availabilityHandler "salas/internal/handlers/availability"
	profileHandler "salas/internal/handlers/profile"
	reservationHandler "salas/internal/handlers/reservation"
	roomHandler "salas/internal/handlers/room"
	ruleHandler "salas/internal/handlers/rule"
	timeBlockHandler "salas/internal/handlers/timeblock"

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
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var catalogDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	timeBlockRepository.New,
	timeBlockService.New,
	materialRepository.New,
	blackoutRepository.New,
	blackoutService.New,
)

var policyDomain = wire.NewSet(
	ruleRepository.New,
	ruleService.New,
	profileRepository.New,
	profileRepository.NewRole,
	profileService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	availabilityService.New,
	reservationService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	policyDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	roomHandler.New,
	timeBlockHandler.New,
	ruleHandler.New,
	reservationHandler.New,
	profileHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
