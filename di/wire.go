//go:build wireinject
// +build wireinject

package di

import (
	"kanpai/config"
	"kanpai/infras/jwt"
	"kanpai/infras/kafka"
	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/infras/redis"
	"kanpai/infras/s3"
	"kanpai/permissions"
	"kanpai/shared/cache"
	"kanpai/transport/http"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/router"

	"github.com/google/wire"

	authService "kanpai/internal/domains/auth/service"
	barRepository "kanpai/internal/domains/bar/repository"
	barService "kanpai/internal/domains/bar/service"
	blogRepository "kanpai/internal/domains/blog/repository"
	blogService "kanpai/internal/domains/blog/service"
	distilleryRepository "kanpai/internal/domains/distillery/repository"
	distilleryService "kanpai/internal/domains/distillery/service"
	eventRepository "kanpai/internal/domains/event/repository"
	eventService "kanpai/internal/domains/event/service"
	homepageRepository "kanpai/internal/domains/homepage/repository"
	homepageService "kanpai/internal/domains/homepage/service"
	mediaRepository "kanpai/internal/domains/media/repository"
	mediaService "kanpai/internal/domains/media/service"
	orderRepository "kanpai/internal/domains/order/repository"
	orderService "kanpai/internal/domains/order/service"
	registrationRepository "kanpai/internal/domains/registration/repository"
	registrationService "kanpai/internal/domains/registration/service"
	userRepository "kanpai/internal/domains/user/repository"
	userService "kanpai/internal/domains/user/service"

	authHandler "kanpai/internal/handlers/auth"
	barHandler "kanpai/internal/handlers/bar"
	blogHandler "kanpai/internal/handlers/blog"
	distilleryHandler "kanpai/internal/handlers/distillery"
	eventHandler "kanpai/internal/handlers/event"
	homepageHandler "kanpai/internal/handlers/homepage"
	mediaHandler "kanpai/internal/handlers/media"
	orderHandler "kanpai/internal/handlers/order"
	userHandler "kanpai/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var barDomain = wire.NewSet(
	barRepository.New,
	barService.New,
)

var distilleryDomain = wire.NewSet(
	distilleryRepository.New,
	distilleryService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var homepageDomain = wire.NewSet(
	homepageRepository.New,
	homepageService.New,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
	registrationRepository.NewBusiness,
	registrationRepository.NewExperience,
	registrationService.New,
)

var domains = wire.NewSet(
	barDomain,
	distilleryDomain,
	eventDomain,
	blogDomain,
	orderDomain,
	homepageDomain,
	mediaDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	barHandler.New,
	blogHandler.New,
	distilleryHandler.New,
	eventHandler.New,
	homepageHandler.New,
	mediaHandler.New,
	orderHandler.New,
	userHandler.New,
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
