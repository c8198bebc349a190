package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"presence-service/internal/app/config"
	"presence-service/internal/app/delivery/http/controllers"
	"presence-service/internal/app/delivery/http/middlewares"
	"presence-service/internal/app/delivery/http/routers"
	"presence-service/internal/app/drivers/logger"
	"presence-service/internal/app/models"
	"presence-service/internal/app/services/core/presence"
	"presence-service/internal/app/services/core/users"
	"presence-service/internal/app/services/shared/memocache"
	"presence-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := utils.ValidateStruct(internalConfig); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	log := logger.NewZapLogger(driverConfig, internalConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrap.Shutdown()

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	cacheDuration := time.Duration(bootstrap.InternalConfig.Presence.CacheDurationInSeconds) * time.Second

	// Presence
	presenceRepository := presence.NewPresenceCSVRepository(bootstrap.InternalConfig, bootstrap.Logger)
	presenceOpts := []memocache.Option[models.PresenceByUser]{}
	if bootstrap.InternalConfig.Presence.CacheDeepCopy {
		presenceOpts = append(presenceOpts, memocache.WithClone(models.PresenceByUser.Clone))
	}
	presenceSource := memocache.NewLoader(presenceRepository.LoadPresence, cacheDuration, presenceOpts...)

	// User directory
	userRepository := users.NewUserXMLRepository(bootstrap.InternalConfig, bootstrap.Logger)
	userOpts := []memocache.Option[models.UserDirectory]{}
	if bootstrap.InternalConfig.Presence.CacheDeepCopy {
		userOpts = append(userOpts, memocache.WithClone(models.UserDirectory.Clone))
	}
	userDirectorySource := memocache.NewLoader(userRepository.LoadUsers, cacheDuration, userOpts...)

	presenceUsecase := presence.NewPresenceUsecase(presenceSource, userDirectorySource, bootstrap.Logger)
	presenceController := controllers.NewPresenceController(bootstrap.Logger, presenceUsecase)
	pageController := controllers.NewPageController(bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, presenceController, pageController)
}
