package contracts

import (
	"athena-relay-service/internal/pkg/dto/requests"
	"context"
)

type PatientRegistrationUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.PatientRegistration) ([]byte, error)
}
