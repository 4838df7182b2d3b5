// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"kanpai/config"
	"kanpai/infras/jwt"
	"kanpai/infras/kafka"
	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/infras/redis"
	"kanpai/infras/s3"
	"kanpai/internal/domains/auth/service"
	repository3 "kanpai/internal/domains/bar/repository"
	service3 "kanpai/internal/domains/bar/service"
	repository6 "kanpai/internal/domains/blog/repository"
	service6 "kanpai/internal/domains/blog/service"
	repository4 "kanpai/internal/domains/distillery/repository"
	service4 "kanpai/internal/domains/distillery/service"
	repository5 "kanpai/internal/domains/event/repository"
	service5 "kanpai/internal/domains/event/service"
	repository8 "kanpai/internal/domains/homepage/repository"
	service8 "kanpai/internal/domains/homepage/service"
	repository9 "kanpai/internal/domains/media/repository"
	service9 "kanpai/internal/domains/media/service"
	repository7 "kanpai/internal/domains/order/repository"
	service7 "kanpai/internal/domains/order/service"
	repository2 "kanpai/internal/domains/registration/repository"
	service2 "kanpai/internal/domains/registration/service"
	"kanpai/internal/domains/user/repository"
	service10 "kanpai/internal/domains/user/service"
	"kanpai/internal/handlers/auth"
	"kanpai/internal/handlers/bar"
	"kanpai/internal/handlers/blog"
	"kanpai/internal/handlers/distillery"
	"kanpai/internal/handlers/event"
	"kanpai/internal/handlers/homepage"
	"kanpai/internal/handlers/media"
	"kanpai/internal/handlers/order"
	"kanpai/internal/handlers/user"
	"kanpai/permissions"
	"kanpai/shared/cache"
	"kanpai/transport/http"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, jwtJWT, otelOtel)
	business := repository2.NewBusiness(connection, otelOtel)
	experience := repository2.NewExperience(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	client := kafka.New(configConfig)
	registration := service2.New(business, experience, repositoryUser, connection, configConfig, s3S3, client, otelOtel)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	handler := auth.New(serviceAuth, registration, authRole, otelOtel)
	repositoryBar := repository3.New(connection, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	serviceBar := service3.New(repositoryBar, configConfig, redisCache, otelOtel)
	barHandler := bar.New(serviceBar, authRole, otelOtel)
	repositoryDistillery := repository4.New(connection, otelOtel)
	serviceDistillery := service4.New(repositoryDistillery, configConfig, redisCache, otelOtel)
	distilleryHandler := distillery.New(serviceDistillery, authRole, otelOtel)
	repositoryEvent := repository5.New(connection, otelOtel)
	serviceEvent := service5.New(repositoryEvent, configConfig, redisCache, otelOtel)
	eventHandler := event.New(serviceEvent, authRole, otelOtel)
	repositoryBlog := repository6.New(connection, otelOtel)
	serviceBlog := service6.New(repositoryBlog, configConfig, redisCache, otelOtel)
	blogHandler := blog.New(serviceBlog, authRole, otelOtel)
	repositoryOrder := repository7.New(connection, otelOtel)
	serviceOrder := service7.New(repositoryOrder, configConfig, redisCache, client, otelOtel)
	orderHandler := order.New(serviceOrder, authRole, otelOtel)
	repositoryHomepage := repository8.New(connection, otelOtel)
	serviceHomepage := service8.New(repositoryHomepage, configConfig, redisCache, otelOtel)
	homepageHandler := homepage.New(serviceHomepage, authRole, otelOtel)
	repositoryMedia := repository9.New(connection, otelOtel)
	serviceMedia := service9.New(repositoryMedia, configConfig, redisCache, s3S3, otelOtel)
	mediaHandler := media.New(serviceMedia, authRole, otelOtel)
	serviceUser := service10.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, authRole, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:       handler,
		Bar:        barHandler,
		Distillery: distilleryHandler,
		Event:      eventHandler,
		Blog:       blogHandler,
		Order:      orderHandler,
		Homepage:   homepageHandler,
		Media:      mediaHandler,
		User:       userHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, s3.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, permissions.Get)

var barDomain = wire.NewSet(repository3.New, service3.New)

var distilleryDomain = wire.NewSet(repository4.New, service4.New)

var eventDomain = wire.NewSet(repository5.New, service5.New)

var blogDomain = wire.NewSet(repository6.New, service6.New)

var orderDomain = wire.NewSet(repository7.New, service7.New)

var homepageDomain = wire.NewSet(repository8.New, service8.New)

var mediaDomain = wire.NewSet(repository9.New, service9.New)

var userDomain = wire.NewSet(repository.New, service10.New)

var authDomain = wire.NewSet(service.New, repository2.NewBusiness, repository2.NewExperience, service2.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, bar.New, blog.New, distillery.New, event.New, homepage.New, media.New, order.New, user.New, router.New)
