package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamError_Detail(t *testing.T) {
	t.Run("HTTP Status With JSON Body", func(t *testing.T) {
		err := NewUpstreamStatusError("athena_patient", 400, []byte(`{"error":"Invalid departmentid"}`))

		detail, ok := err.Detail().(json.RawMessage)
		require.True(t, ok, "a JSON body should be embedded as raw JSON")
		assert.JSONEq(t, `{"error":"Invalid departmentid"}`, string(detail))
	})

	t.Run("HTTP Status With Text Body", func(t *testing.T) {
		err := NewUpstreamStatusError("athena_patient", 502, []byte("Bad Gateway"))

		assert.Equal(t, "Bad Gateway", err.Detail())
	})

	t.Run("HTTP Status With Empty Body", func(t *testing.T) {
		err := NewUpstreamStatusError("athena_patient", 500, nil)

		assert.Equal(t, "", err.Detail())
	})

	t.Run("Network", func(t *testing.T) {
		err := NewUpstreamNetworkError("athena_patient", errors.New("dial tcp: connection refused"))

		assert.Equal(t, "dial tcp: connection refused", err.Detail())
	})

	t.Run("Auth Hides Upstream Body", func(t *testing.T) {
		cause := NewUpstreamStatusError("athena_token", 401, []byte(`{"error":"invalid_client"}`))
		err := NewUpstreamAuthError(cause)

		assert.Equal(t, "Failed to retrieve access token", err.Detail())
		assert.Equal(t, 401, err.StatusCode, "status should be carried over from the token endpoint")
		assert.Equal(t, []byte(`{"error":"invalid_client"}`), err.Body)
	})
}

func TestUpstreamError_Unwrap(t *testing.T) {
	network := NewUpstreamNetworkError("athena_token", errors.New("timeout"))
	err := fmt.Errorf("wrapped: %w", NewUpstreamAuthError(network))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, UpstreamAuth, upstreamErr.Kind)

	var inner *UpstreamError
	require.True(t, errors.As(upstreamErr.Err, &inner))
	assert.Equal(t, UpstreamNetwork, inner.Kind)
	assert.Contains(t, upstreamErr.Error(), "timeout")
}

func TestUpstreamErrorKind_String(t *testing.T) {
	assert.Equal(t, "network", UpstreamNetwork.String())
	assert.Equal(t, "http_status", UpstreamHTTPStatus.String())
	assert.Equal(t, "auth", UpstreamAuth.String())
	assert.Equal(t, "unknown", UpstreamErrorKind(0).String())
}
