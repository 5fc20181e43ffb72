package middlewares

import (
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per minute at App.MaxRequests.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildJSONResponse(w, constvars.StatusTooManyRequests, map[string]string{
				constvars.ResponseError: constvars.ErrClientTooManyRequests,
			})
		}),
	)
}
