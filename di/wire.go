//go:build wireinject
// +build wireinject

package di

import (
	"reservas/config"
	"reservas/infras/otel"
	"reservas/infras/postgres"
	"reservas/transport/http"
	"reservas/transport/http/middleware"
	"reservas/transport/http/router"

	annotationRepository "reservas/internal/domains/annotation/repository"
	annotationService "reservas/internal/domains/annotation/service"
	reservationRepository "reservas/internal/domains/reservation/repository"
	reservationService "reservas/internal/domains/reservation/service"
	roomRepository "reservas/internal/domains/room/repository"
	roomService "reservas/internal/domains/room/service"
	stateRepository "reservas/internal/domains/state/repository"
	stateService "reservas/internal/domains/state/service"
	annotationHandler "reservas/internal/handlers/annotation"
	reservationHandler "reservas/internal/handlers/reservation"
	roomHandler "reservas/internal/handlers/room"
	stateHandler "reservas/internal/handlers/state"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(http.Database), new(*postgres.Connection)),
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	ProvideCache,
	ProvidePublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var stateDomain = wire.NewSet(
	stateRepository.New,
	stateService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var annotationDomain = wire.NewSet(
	annotationRepository.New,
	annotationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	stateDomain,
	reservationDomain,
	annotationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	stateHandler.New,
	reservationHandler.New,
	annotationHandler.New,
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
