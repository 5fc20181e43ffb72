package middlewares

import (
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/exceptions"
	"athena-relay-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RejectDisallowedOrigin stops browser requests from origins outside
// App.AllowedOrigins before they reach any handler. Requests without an
// Origin header are not cross-origin and pass through.
func (m *Middlewares) RejectDisallowedOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(constvars.HeaderOrigin)
		if origin == "" || m.isOriginAllowed(origin) {
			next.ServeHTTP(w, r)
			return
		}

		m.Log.Warn("Rejected request from disallowed origin",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingOriginKey, origin),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)
		err := exceptions.ErrOriginNotAllowed(origin)
		utils.BuildJSONResponse(w, err.StatusCode, map[string]string{
			constvars.ResponseError: err.ClientMessage,
		})
	})
}

func (m *Middlewares) isOriginAllowed(origin string) bool {
	for _, allowed := range m.InternalConfig.App.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
