package exceptions

import (
	"athena-relay-service/internal/pkg/constvars"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// UpstreamErrorKind tags which way a call to an external platform failed.
type UpstreamErrorKind int

const (
	// UpstreamNetwork means no HTTP response was received.
	UpstreamNetwork UpstreamErrorKind = iota + 1
	// UpstreamHTTPStatus means the platform answered with a non-2xx status.
	UpstreamHTTPStatus
	// UpstreamAuth means the bearer token could not be obtained.
	UpstreamAuth
)

func (k UpstreamErrorKind) String() string {
	switch k {
	case UpstreamNetwork:
		return "network"
	case UpstreamHTTPStatus:
		return "http_status"
	case UpstreamAuth:
		return "auth"
	default:
		return constvars.ResponseUnknown
	}
}

// UpstreamError is returned by every outbound athena call. StatusCode and Body
// are only meaningful for UpstreamHTTPStatus, or for UpstreamAuth when the
// token endpoint itself answered.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Service    string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case UpstreamHTTPStatus:
		return fmt.Sprintf("%s: %s", e.Service, fmt.Sprintf(constvars.ErrDevUpstreamUnexpectedStatus, e.StatusCode))
	case UpstreamAuth:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s", constvars.ErrDevAthenaTokenExchange, e.Err.Error())
		}
		return constvars.ErrDevAthenaTokenExchange
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s", e.Service, e.Err.Error())
		}
		return e.Service
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamNetworkError(service string, err error) *UpstreamError {
	return &UpstreamError{
		Kind:    UpstreamNetwork,
		Service: service,
		Err:     err,
	}
}

func NewUpstreamStatusError(service string, statusCode int, body []byte) *UpstreamError {
	return &UpstreamError{
		Kind:       UpstreamHTTPStatus,
		Service:    service,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewUpstreamAuthError wraps the failure of the token exchange. When the cause
// is itself an UpstreamError, its status and body are carried over.
func NewUpstreamAuthError(cause error) *UpstreamError {
	authErr := &UpstreamError{
		Kind:    UpstreamAuth,
		Service: constvars.ServiceAthenaToken,
		Err:     cause,
	}

	var upstreamErr *UpstreamError
	if errors.As(cause, &upstreamErr) {
		authErr.StatusCode = upstreamErr.StatusCode
		authErr.Body = upstreamErr.Body
	}
	return authErr
}

// Detail is the value rendered under "error" for the caller of /register.
// Upstream bodies that are valid JSON are embedded as-is, anything else is a string.
func (e *UpstreamError) Detail() interface{} {
	switch e.Kind {
	case UpstreamAuth:
		return constvars.ErrClientFailedToRetrieveAccessToken
	case UpstreamHTTPStatus:
		if len(e.Body) > 0 && json.Valid(e.Body) {
			return json.RawMessage(e.Body)
		}
		return string(e.Body)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return constvars.ErrClientCannotProcessRequest
	}
}
