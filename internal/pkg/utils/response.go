package utils

import (
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/dto/responses"
	"athena-relay-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildRawJSONResponse writes an upstream body without re-encoding it.
func BuildRawJSONResponse(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	w.Write(body)
}

// BuildRelayErrorResponse renders every failure of the relay route as
// 400 {"error": <detail>}.
func BuildRelayErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := responses.RelayErrorResponse{Error: RelayErrorDetail(err)}

	var upstreamErr *exceptions.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Error(err.Error(),
			zap.String(constvars.LoggingServiceKey, upstreamErr.Service),
			zap.String(constvars.LoggingErrorTypeKey, upstreamErr.Kind.String()),
			zap.Int(constvars.LoggingStatusCodeKey, upstreamErr.StatusCode),
			zap.ByteString(constvars.LoggingUpstreamBodyKey, upstreamErr.Body),
		)
	} else {
		logCustomError(log, err)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusBadRequest)
	json.NewEncoder(w).Encode(response)
}

// RelayErrorDetail picks what the caller sees under "error".
func RelayErrorDetail(err error) interface{} {
	var upstreamErr *exceptions.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Detail()
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if cause := errors.Unwrap(customErr); cause != nil {
			return cause.Error()
		}
		return customErr.ClientMessage
	}

	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}
	return err.Error()
}

// BuildErrorResponse renders a CustomError; dev details and locations are
// only included outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, appEnv string) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
	}
	logCustomError(log, err)

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil && appEnv != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func logCustomError(log *zap.Logger, err error) {
	if err == nil {
		return
	}

	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error(err.Error())
		return
	}

	for _, location := range customErr.Locations {
		log.Error(customErr.DevMessage,
			zap.Any("location", location),
		)
	}
}
