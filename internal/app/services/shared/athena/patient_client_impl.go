package athena

import (
	"athena-relay-service/internal/app/config"
	"athena-relay-service/internal/app/contracts"
	"athena-relay-service/internal/pkg/athena_dto"
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/exceptions"
	"athena-relay-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type patientClient struct {
	PatientsUrl string
	HTTPClient  *http.Client
	Metrics     contracts.RelayMetrics
	Log         *zap.Logger
}

func NewPatientClient(athenaConfig config.Athena, httpClient *http.Client, metrics contracts.RelayMetrics, logger *zap.Logger) contracts.AthenaPatientClient {
	return &patientClient{
		PatientsUrl: athenaConfig.PatientsUrl(),
		HTTPClient:  httpClient,
		Metrics:     metrics,
		Log:         logger,
	}
}

// CreatePatient posts the form and returns the raw athena body on any 2xx.
func (c *patientClient) CreatePatient(ctx context.Context, accessToken string, request *athena_dto.CreatePatientRequest) ([]byte, error) {
	start := time.Now()
	requestID := utils.RequestIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.PatientsUrl, strings.NewReader(request.FormValues().Encode()))
	if err != nil {
		c.Log.Error("patientClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.NewUpstreamNetworkError(constvars.ServiceAthenaPatient, err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+" "+accessToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaPatient, outcomeNetworkError, time.Since(start))
		c.Log.Error("patientClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, c.PatientsUrl),
			zap.Error(err),
		)
		return nil, exceptions.NewUpstreamNetworkError(constvars.ServiceAthenaPatient, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaPatient, outcomeNetworkError, time.Since(start))
		c.Log.Error("patientClient.CreatePatient error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.NewUpstreamNetworkError(constvars.ServiceAthenaPatient, err)
	}

	if !isSuccessStatus(resp.StatusCode) {
		c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaPatient, outcomeHTTPError, time.Since(start))
		c.Log.Error("patientClient.CreatePatient athena rejected the patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString(constvars.LoggingUpstreamBodyKey, bodyBytes),
		)
		return nil, exceptions.NewUpstreamStatusError(constvars.ServiceAthenaPatient, resp.StatusCode, bodyBytes)
	}

	c.Metrics.ObserveUpstreamCall(constvars.ServiceAthenaPatient, outcomeSuccess, time.Since(start))
	c.Log.Info("patientClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return bodyBytes, nil
}
