package routers

import (
	"athena-relay-service/internal/app/config"
	"athena-relay-service/internal/app/delivery/http/controllers"
	"athena-relay-service/internal/app/delivery/http/middlewares"
	"athena-relay-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	registry *prometheus.Registry,
	patientRegistrationController *controllers.PatientRegistrationController,
	healthController *controllers.HealthController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RejectDisallowedOrigin)

	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Get(constvars.RouteHealth, healthController.Health)
	router.Handle(constvars.RouteMetrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimit())
		attachPatientRegistrationRoutes(r, patientRegistrationController)
	})
}
