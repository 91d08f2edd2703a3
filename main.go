// File: anndann/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anndann/config"
	"anndann/cron"
	"anndann/database"
	volunteerRepo "anndann/database/repository/volunteer"
	"anndann/handlers"
	"anndann/middleware"
	"anndann/routes"
	"anndann/services/draft"
	"anndann/services/geocoding"
	"anndann/services/notification"
	"anndann/services/tasks"
	"anndann/services/volunteer"
	"anndann/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	var repo volunteerRepo.VolunteerRepository
	switch config.AppConfig.DocumentStore {
	case "firestore":
		utils.FirebaseInit()
		repo = volunteerRepo.NewFirestoreVolunteerRepo(utils.GetFirestoreClient())
	default:
		database.InitDB()
		repo = volunteerRepo.NewMongoVolunteerRepo(logger)
	}

	var draftStore draft.Store
	switch config.AppConfig.DraftStore {
	case "memory":
		draftStore = draft.NewMemoryStore()
	default:
		draftStore = draft.NewRedisStore(utils.GetDraftCacheClient(), config.AppConfig.DraftTTL)
	}

	var geocoder geocoding.Geocoder = geocoding.NewNominatimClient(
		config.AppConfig.GeocoderBaseURL,
		config.AppConfig.GeocoderUserAgent,
	)
	if config.AppConfig.GeocodeCacheTTL > 0 {
		geocoder = geocoding.NewCachedGeocoder(geocoder, utils.GetCacheClient(), config.AppConfig.GeocodeCacheTTL, logger)
	}

	// notifications.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	var publisher volunteer.RegistrationPublisher
	var queueClient *asynq.Client
	var worker *asynq.Server
	if config.AppConfig.NotifyEnabled {
		notificationService, err := notification.NewFCMNotificationService(
			utils.GetFCMClient(), config.AppConfig.NotifyTopic, logger)
		if err != nil {
			logger.Fatal("main: failed to initialize notifications", zap.Error(err))
		}
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		publisher = tasks.NewQueuePublisher(queueClient)
		worker = cron.InitNotificationWorker(workerCtx, notificationService, logger)
	}

	// services.
	volunteerService := volunteer.NewDefaultVolunteerService(repo, publisher, logger)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, utils.RedisClients(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	draftHandler := handlers.NewDraftHandler(draftStore)
	geocodeHandler := handlers.NewGeocodeHandler(geocoder)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterVolunteerHandler: volunteerHandler.RegisterVolunteerHandler,

		GetDraftHandler:   draftHandler.GetDraftHandler,
		MergeDraftHandler: draftHandler.MergeDraftHandler,
		ClearDraftHandler: draftHandler.ClearDraftHandler,

		GeocodeSearchHandler:  geocodeHandler.SearchHandler,
		GeocodeReverseHandler: geocodeHandler.ReverseHandler,

		HealthHandler: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopWorker()
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}
	if utils.FirestoreClient != nil {
		if err := utils.FirestoreClient.Close(); err != nil {
			logger.Warn("main: failed to close Firestore client", zap.Error(err))
		}
	}
	for _, c := range utils.RedisClients() {
		_ = c.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
