// File: fieldbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldbook/config"
	"fieldbook/cron"
	"fieldbook/database"
	bookingRepoPkg "fieldbook/database/repository/booking"
	ruleRepoPkg "fieldbook/database/repository/rule"
	serviceRepoPkg "fieldbook/database/repository/service"
	unavailabilityRepoPkg "fieldbook/database/repository/unavailability"
	workerRepoPkg "fieldbook/database/repository/worker"
	"fieldbook/handlers"
	"fieldbook/middleware"
	"fieldbook/routes"
	"fieldbook/services/availability"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Client for enqueuing cache-invalidation tasks.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ruleRepo := ruleRepoPkg.NewMongoRuleRepo()
	blockRepo := unavailabilityRepoPkg.NewMongoUnavailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	if err := ruleRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure rule indexes: %v", err)
	}
	if err := blockRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure unavailability indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Engine:       availability.NewEngine(),
		WorkerRepo:   workerRepo,
		ServiceRepo:  serviceRepo,
		RuleRepo:     ruleRepo,
		BlockRepo:    blockRepo,
		BookingRepo:  bookingRepo,
		CacheClient:  utils.GetCacheClient(),
		QueueClient:  queueClient,
		MaxRangeDays: config.AppConfig.AvailabilityMaxRangeDays,
		CacheTTLSecs: config.AppConfig.AvailabilityCacheTTL,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Availability:   handlers.NewAvailabilityHandler(availabilityService),
		Rules:          handlers.NewRuleHandler(ruleRepo, availabilityService),
		Unavailability: handlers.NewUnavailabilityHandler(blockRepo, availabilityService),
		Bookings:       handlers.NewBookingHandler(bookingRepo),
		Services:       handlers.NewServiceHandler(serviceRepo),
		Workers:        handlers.NewWorkerHandler(workerRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the async cache-invalidation worker.
	cron.InitInvalidationWorker(availabilityService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
