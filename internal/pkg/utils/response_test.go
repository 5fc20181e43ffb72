package utils

import (
	"athena-relay-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildRelayErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "Upstream JSON Body",
			err:      exceptions.NewUpstreamStatusError("athena_patient", 400, []byte(`{"error":"Invalid email"}`)),
			wantBody: `{"error":{"error":"Invalid email"}}`,
		},
		{
			name:     "Auth Failure",
			err:      exceptions.NewUpstreamAuthError(exceptions.NewUpstreamStatusError("athena_token", 401, []byte(`{}`))),
			wantBody: `{"error":"Failed to retrieve access token"}`,
		},
		{
			name:     "Network Failure",
			err:      exceptions.NewUpstreamNetworkError("athena_patient", errors.New("connection reset by peer")),
			wantBody: `{"error":"connection reset by peer"}`,
		},
		{
			name:     "Local Parse Failure",
			err:      exceptions.ErrCannotParseJSON(errors.New("unexpected end of JSON input")),
			wantBody: `{"error":"unexpected end of JSON input"}`,
		},
		{
			name:     "Plain Error",
			err:      errors.New("boom"),
			wantBody: `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			BuildRelayErrorResponse(logger, rr, tt.err)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "every relay failure should be a 400")
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Production Hides Dev Details", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rr := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrServerProcess(errors.New("panic")), "production")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status_code":500,"success":false,"message":"there is something wrong with the application"}`, rr.Body.String())
	})

	t.Run("Development Shows Dev Details", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rr := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrServerProcess(errors.New("panic")), "development")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"dev_message":"server failed to process the request: panic"`)
	})
}
