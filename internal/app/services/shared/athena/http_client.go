package athena

import (
	"athena-relay-service/internal/app/config"
	"net/http"
	"time"
)

// NewHTTPClient builds the client shared by the token and patient calls.
// A zero timeout keeps the net/http default of no deadline.
func NewHTTPClient(athenaConfig config.Athena) *http.Client {
	return &http.Client{
		Timeout:   time.Duration(athenaConfig.HTTPTimeoutInSeconds) * time.Second,
		Transport: &http.Transport{Proxy: http.ProxyFromEnvironment, MaxIdleConnsPerHost: 100},
	}
}

const (
	outcomeSuccess         = "success"
	outcomeNetworkError    = "network_error"
	outcomeHTTPError       = "http_error"
	outcomeInvalidResponse = "invalid_response"
)

func isSuccessStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
