package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/config"
	"github.com/raja-bazar/makhtab-admin-service/internal/events"
	"github.com/raja-bazar/makhtab-admin-service/internal/handlers"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories/kv"
	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
	"github.com/raja-bazar/makhtab-admin-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the record store
	recordStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// Initialize the event publisher
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewGoChannelPublisher(slogLogger)
	}

	// Initialize repositories
	repoManager := kv.NewRepositoryManager(recordStore)

	// Initialize validator
	v := validator.New()

	// Initialize services
	serviceManager := services.NewServiceManager(recordStore, repoManager, publisher, v, slogLogger, services.ManagerConfig{
		Auth: services.AuthConfig{
			AdminEmail:      cfg.AdminEmail,
			AdminPassword:   cfg.AdminPassword,
			TeacherPassword: cfg.TeacherPassword,
		},
		OTPTTL:      cfg.OTPTTL,
		SeedOnStart: cfg.SeedOnStart,
	})
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if err := recordStore.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}

	logger.Info("Server exited")
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db)
	default:
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	}
}
