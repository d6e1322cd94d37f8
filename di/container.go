package di

import (
	"context"
	"log"

	"astrocal-server/astro"
	"astrocal-server/config"
	redisdao "astrocal-server/dao/redis"
	"astrocal-server/db"
	"astrocal-server/server"
	"astrocal-server/server/handlers"
	services "astrocal-server/service"
	"astrocal-server/state"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisSessionDao         *redisdao.RedisSessionDAO
	RedisAlmanacDao         *redisdao.RedisAlmanacDAO
	Controller              *state.Controller
	AstronomyAPI            astro.AstronomyAPI
	AlmanacService          *services.AlmanacService
	AlmanacRefresherService *services.AlmanacRefresherService
	AlmanacHandler          *handlers.AlmanacHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	AstroCalendarHttpServer *server.AstroCalendarHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()
	loc := config.ObserverLocation()

	// Initialize the Redis-backed store; tests and dev environments
	// run against the in-memory mock instead.
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewSessionRedisClient(ctx, redisInternalClient)
	}

	// Initialize DAOs
	redisSessionDao := redisdao.NewRedisSessionDAO(redisClient)
	redisAlmanacDao := redisdao.NewRedisAlmanacDAO(redisClient)

	// Initialize the selected-date controller
	controller := state.NewController(redisSessionDao)

	// Initialize the astronomy facade - mock outside prod
	var astronomyApi astro.AstronomyAPI
	if env != "prod" {
		astronomyApi = astro.NewEphemerisClientMock(loc)
		log.Printf("Using mock astronomy api")
	} else {
		log.Printf("Using ephemeris astronomy api")
		astronomyApi = astro.NewEphemerisClient(
			config.OBSERVER_LATITUDE,
			config.OBSERVER_LONGITUDE,
			config.OBSERVER_ELEVATION_M,
			loc,
		)
	}

	// Initialize service layer
	almanacService := services.NewAlmanacService(astronomyApi, redisAlmanacDao, loc)
	almanacRefresherService := services.NewAlmanacRefresherService(almanacService, redisAlmanacDao, loc)

	// Initialize the almanac handler
	almanacHandler := handlers.NewAlmanacHandler(controller, almanacService, astronomyApi)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(almanacHandler, muxRouter)

	// Initialize the astro calendar server
	astroCalendarHttpServer := server.NewAstroCalendarHttpServer(router, muxRouter)

	return &Container{
		RedisClient:             redisClient,
		RedisSessionDao:         redisSessionDao,
		RedisAlmanacDao:         redisAlmanacDao,
		Controller:              controller,
		AstronomyAPI:            astronomyApi,
		AlmanacService:          almanacService,
		AlmanacRefresherService: almanacRefresherService,
		AlmanacHandler:          almanacHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		AstroCalendarHttpServer: astroCalendarHttpServer,
	}
}
