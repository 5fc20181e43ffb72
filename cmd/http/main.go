package main

import (
	"athena-relay-service/internal/app/config"
	"athena-relay-service/internal/app/delivery/http/controllers"
	"athena-relay-service/internal/app/delivery/http/middlewares"
	"athena-relay-service/internal/app/delivery/http/routers"
	"athena-relay-service/internal/app/drivers/logger"
	"athena-relay-service/internal/app/services/core/patient_registrations"
	"athena-relay-service/internal/app/services/shared/athena"
	"athena-relay-service/internal/app/services/shared/metrics"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(internalConfig)

	err := internalConfig.Validate()
	if err != nil {
		log.Fatal("Invalid configuration, refusing to start", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		Registry:       registry,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Address(),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server running", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
	bootstrap.Shutdown()
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	relayMetrics := metrics.NewPrometheusRelayMetrics(bootstrap.Registry)

	// Athena
	athenaHTTPClient := athena.NewHTTPClient(bootstrap.InternalConfig.Athena)
	tokenClient := athena.NewTokenClient(bootstrap.InternalConfig.Athena, athenaHTTPClient, relayMetrics, bootstrap.Logger)
	patientClient := athena.NewPatientClient(bootstrap.InternalConfig.Athena, athenaHTTPClient, relayMetrics, bootstrap.Logger)

	// Patient registration
	patientRegistrationUsecase := patient_registrations.NewPatientRegistrationUsecase(tokenClient, patientClient, relayMetrics, bootstrap.Logger)
	patientRegistrationController := controllers.NewPatientRegistrationController(bootstrap.Logger, patientRegistrationUsecase)

	healthController := controllers.NewHealthController(bootstrap.InternalConfig)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, bootstrap.Registry, patientRegistrationController, healthController)
}
