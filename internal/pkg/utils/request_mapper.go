package utils

import (
	"athena-relay-service/internal/pkg/athena_dto"
	"athena-relay-service/internal/pkg/dto/requests"
)

// MapPatientRegistrationToAthena renames the form fields to the athena
// spelling. Only departmentid is coerced; nothing else is checked here.
func MapPatientRegistrationToAthena(request *requests.PatientRegistration) *athena_dto.CreatePatientRequest {
	departmentID := athena_dto.DepartmentID{}
	if request.DepartmentID.Set {
		departmentID = athena_dto.ParseDepartmentID(request.DepartmentID.Value)
	}

	return &athena_dto.CreatePatientRequest{
		FirstName:    request.FirstName.Ptr(),
		LastName:     request.LastName.Ptr(),
		DOB:          request.DOB.Ptr(),
		DepartmentID: departmentID,
		Email:        request.Email.Ptr(),
	}
}
