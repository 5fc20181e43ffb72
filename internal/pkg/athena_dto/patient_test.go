package athena_dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestCreatePatientRequest_FormValues(t *testing.T) {
	t.Run("All Fields", func(t *testing.T) {
		request := &CreatePatientRequest{
			FirstName:    strPtr("Jo"),
			LastName:     strPtr("Doe"),
			DOB:          strPtr("1990-01-01"),
			DepartmentID: NewDepartmentID(1),
			Email:        strPtr("jo@example.com"),
		}

		values := request.FormValues()

		assert.Equal(t, "Jo", values.Get("firstName"))
		assert.Equal(t, "Doe", values.Get("lastName"))
		assert.Equal(t, "1990-01-01", values.Get("dob"))
		assert.Equal(t, "1", values.Get("departmentID"))
		assert.Equal(t, "jo@example.com", values.Get("email"))
		assert.Equal(t, "departmentID=1&dob=1990-01-01&email=jo%40example.com&firstName=Jo&lastName=Doe", values.Encode())
	})

	t.Run("Unset Fields Are Omitted", func(t *testing.T) {
		request := &CreatePatientRequest{FirstName: strPtr("Jo")}

		values := request.FormValues()

		assert.Len(t, values, 2)
		assert.Equal(t, "NaN", values.Get("departmentID"), "departmentID should always be sent")
		assert.False(t, values.Has("email"))
	})

	t.Run("Empty String Is Kept", func(t *testing.T) {
		request := &CreatePatientRequest{Email: strPtr("")}

		values := request.FormValues()

		assert.True(t, values.Has("email"))
		assert.Equal(t, "", values.Get("email"))
	})
}

func TestTokenRequest_FormValues(t *testing.T) {
	values := TokenRequest{GrantType: "client_credentials", Scope: "athena/service/Athenanet.MDP.*"}.FormValues()

	assert.Equal(t, "client_credentials", values.Get("grant_type"))
	assert.Equal(t, "athena/service/Athenanet.MDP.*", values.Get("scope"))
}
