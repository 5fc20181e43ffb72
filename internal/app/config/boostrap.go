package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown() error {
	return b.Logger.Sync()
}
