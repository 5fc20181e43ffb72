package controllers

import (
	"athena-relay-service/internal/app/config"
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/dto/responses"
	"athena-relay-service/internal/pkg/utils"
	"net/http"
	"time"
)

type HealthController struct {
	startTime time.Time
	version   string
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		startTime: time.Now(),
		version:   internalConfig.App.Version,
	}
}

// Health is a liveness probe; it never calls athena.
func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.HealthResponse{
		Status:    constvars.HealthStatusUp,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(ctrl.startTime).Round(time.Second).String(),
		Version:   ctrl.version,
	})
}
