package athena_dto

import (
	"athena-relay-service/internal/pkg/constvars"
	"net/url"
)

// CreatePatientRequest is the form sent to the athena patients endpoint.
type CreatePatientRequest struct {
	FirstName    *string      `json:"firstName,omitempty"`
	LastName     *string      `json:"lastName,omitempty"`
	DOB          *string      `json:"dob,omitempty"`
	DepartmentID DepartmentID `json:"departmentID"`
	Email        *string      `json:"email,omitempty"`
}

// FormValues renders the URL-encoded body. Unset text fields are left out,
// departmentID is always present.
func (p *CreatePatientRequest) FormValues() url.Values {
	values := url.Values{}
	setIfPresent(values, constvars.AthenaPatientFirstName, p.FirstName)
	setIfPresent(values, constvars.AthenaPatientLastName, p.LastName)
	setIfPresent(values, constvars.AthenaPatientDOB, p.DOB)
	values.Set(constvars.AthenaPatientDepartmentID, p.DepartmentID.String())
	setIfPresent(values, constvars.AthenaPatientEmail, p.Email)
	return values
}

func setIfPresent(values url.Values, key string, value *string) {
	if value != nil {
		values.Set(key, *value)
	}
}
