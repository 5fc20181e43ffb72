package controllers

import (
	"athena-relay-service/internal/app/contracts"
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/dto/requests"
	"athena-relay-service/internal/pkg/exceptions"
	"athena-relay-service/internal/pkg/utils"
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxRegistrationBodyBytes = 1 << 20

type PatientRegistrationController struct {
	Log                        *zap.Logger
	PatientRegistrationUsecase contracts.PatientRegistrationUsecase
}

func NewPatientRegistrationController(logger *zap.Logger, patientRegistrationUsecase contracts.PatientRegistrationUsecase) *PatientRegistrationController {
	return &PatientRegistrationController{
		Log:                        logger,
		PatientRegistrationUsecase: patientRegistrationUsecase,
	}
}

// RegisterPatient answers 201 with the athena body, or 400 {"error": ...}
// for every kind of failure.
func (ctrl *PatientRegistrationController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.RequestIDFromContext(r.Context())
	if requestID == "" {
		utils.BuildRelayErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request, err := decodePatientRegistration(http.MaxBytesReader(w, r.Body, maxRegistrationBodyBytes))
	if err != nil {
		utils.BuildRelayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Upstream calls run to completion even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())

	response, err := ctrl.PatientRegistrationUsecase.RegisterPatient(ctx, request)
	if err != nil {
		utils.BuildRelayErrorResponse(ctrl.Log, w, err)
		return
	}

	encoded, err := encodeUpstreamBody(response)
	if err != nil {
		utils.BuildRelayErrorResponse(ctrl.Log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_registered", requestID,
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildRawJSONResponse(w, constvars.StatusCreated, encoded)
}

// decodePatientRegistration treats an empty body as an empty registration.
func decodePatientRegistration(body io.Reader) (*requests.PatientRegistration, error) {
	request := new(requests.PatientRegistration)

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return request, nil
	}

	if err := json.Unmarshal(raw, request); err != nil {
		return nil, err
	}
	return request, nil
}

var marshalJSON = json.Marshal

// encodeUpstreamBody passes JSON through untouched; any other body becomes a JSON string.
func encodeUpstreamBody(body []byte) ([]byte, error) {
	if json.Valid(body) {
		return body, nil
	}
	return marshalJSON(string(body))
}
