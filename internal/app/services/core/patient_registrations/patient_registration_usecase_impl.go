package patient_registrations

import (
	"athena-relay-service/internal/app/contracts"
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/dto/requests"
	"athena-relay-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

const (
	registrationOutcomeCreated    = "created"
	registrationOutcomeAuthFailed = "auth_failed"
	registrationOutcomeRejected   = "rejected"
)

type patientRegistrationUsecase struct {
	TokenClient   contracts.AthenaTokenClient
	PatientClient contracts.AthenaPatientClient
	Metrics       contracts.RelayMetrics
	Log           *zap.Logger
}

func NewPatientRegistrationUsecase(
	tokenClient contracts.AthenaTokenClient,
	patientClient contracts.AthenaPatientClient,
	metrics contracts.RelayMetrics,
	logger *zap.Logger,
) contracts.PatientRegistrationUsecase {
	return &patientRegistrationUsecase{
		TokenClient:   tokenClient,
		PatientClient: patientClient,
		Metrics:       metrics,
		Log:           logger,
	}
}

// RegisterPatient fetches a fresh token, then submits the mapped patient.
// The patient call is never made when the token exchange fails.
func (uc *patientRegistrationUsecase) RegisterPatient(ctx context.Context, request *requests.PatientRegistration) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("Received patient data",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	accessToken, err := uc.TokenClient.AcquireToken(ctx)
	if err != nil {
		uc.Metrics.IncRegistration(registrationOutcomeAuthFailed)
		return nil, err
	}

	patient := utils.MapPatientRegistrationToAthena(request)
	uc.Log.Info("Sending data to external API",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingDataKey, patient),
	)

	response, err := uc.PatientClient.CreatePatient(ctx, accessToken, patient)
	if err != nil {
		uc.Metrics.IncRegistration(registrationOutcomeRejected)
		return nil, err
	}

	uc.Metrics.IncRegistration(registrationOutcomeCreated)
	uc.Log.Info("Patient registered successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.ByteString(constvars.LoggingResponseKey, response),
	)
	return response, nil
}
