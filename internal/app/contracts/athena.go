package contracts

import (
	"athena-relay-service/internal/pkg/athena_dto"
	"context"
	"time"
)

type AthenaTokenClient interface {
	AcquireToken(ctx context.Context) (string, error)
}

type AthenaPatientClient interface {
	CreatePatient(ctx context.Context, accessToken string, request *athena_dto.CreatePatientRequest) ([]byte, error)
}

// RelayMetrics records the outcome of outbound athena calls and registrations.
type RelayMetrics interface {
	ObserveUpstreamCall(service, outcome string, duration time.Duration)
	IncRegistration(outcome string)
}
