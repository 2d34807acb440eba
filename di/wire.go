//go:build wireinject
// +build wireinject

package di

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/postgres"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/redis"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/cache"
	"github.com/kadynthorpe/starter-restaurant-reservation/transport/http"
	"github.com/kadynthorpe/starter-restaurant-reservation/transport/http/middleware"
	"github.com/kadynthorpe/starter-restaurant-reservation/transport/http/router"

	reservationRepository "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/repository"
	reservationService "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/service"
	tableRepository "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/repository"
	tableService "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/service"

	reservationHandler "github.com/kadynthorpe/starter-restaurant-reservation/internal/handlers/reservation"
	tableHandler "github.com/kadynthorpe/starter-restaurant-reservation/internal/handlers/table"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	tableDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	tableHandler.New,
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
