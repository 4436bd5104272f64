package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/application"
	"github.com/verick-air/service-booking/internal/config"
	bookingDomain "github.com/verick-air/service-booking/internal/domain/booking"
	bookingEvents "github.com/verick-air/service-booking/internal/events"
	"github.com/verick-air/service-booking/internal/gateway"
	"github.com/verick-air/service-booking/internal/handler"
	"github.com/verick-air/service-booking/internal/platform/database"
	"github.com/verick-air/service-booking/internal/platform/logger"
	"github.com/verick-air/service-booking/internal/platform/middleware"
	"github.com/verick-air/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.Database.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&repository.BookingRecordModel{}); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}

	// Connect to the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()
	sessionStore := gateway.NewRedisStore(redisClient)

	// Initialize Kafka producer
	producer := bookingEvents.NewProducer(cfg.Kafka.Brokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize domain services and stubs
	pricingStrategy := bookingDomain.NewStandardPricingStrategy()
	paymentProcessor := application.NewStagedPaymentProcessor(log,
		application.WithDwell(bookingDomain.StageValidating, cfg.Payment.ValidatingDwell),
		application.WithDwell(bookingDomain.StageProcessing, cfg.Payment.ProcessingDwell),
		application.WithDwell(bookingDomain.StageConfirming, cfg.Payment.ConfirmingDwell),
		application.WithDwell(bookingDomain.StageSucceeded, cfg.Payment.SettleDwell),
	)
	remoteServices := gateway.NewStubRemoteServices(cfg.Remote.SubmissionDelay, log)

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)

	// Initialize application services
	bookingService := application.NewBookingService(
		pricingStrategy,
		paymentProcessor,
		remoteServices,
		sessionStore,
		bookingRepo,
		producer,
		log,
	)
	flightService := application.NewFlightService(log)
	sessionService := application.NewSessionService(sessionStore, log)

	// Start the booking event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.Kafka.GroupPrefix + "booking-service"
	consumer := bookingEvents.NewBookingEventConsumer(cfg.Kafka.Brokers, groupID, log)
	defer func() { _ = consumer.Close() }()

	go func() {
		log.Info("starting booking event consumer")
		if err := consumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("booking event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	flightHandler := handler.NewFlightHandler(flightService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	flightHandler.RegisterRoutes(&router.RouterGroup)
	sessionHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
