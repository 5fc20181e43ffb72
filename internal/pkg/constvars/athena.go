package constvars

const (
	AthenaDefaultBaseUrl    = "https://api.preview.platform.athenahealth.com"
	AthenaDefaultPracticeID = "1128700"
	AthenaDefaultScope      = "athena/service/Athenanet.MDP.*"

	AthenaTokenPath            = "/oauth2/v1/token"
	AthenaPatientPathFormat    = "%s/v1/%s/patients"
	AthenaGrantTypeClientCreds = "client_credentials"
)

// Form keys of the OAuth token request.
const (
	AthenaFormGrantType = "grant_type"
	AthenaFormScope     = "scope"
)

// Form keys of the patient creation request.
const (
	AthenaPatientFirstName    = "firstName"
	AthenaPatientLastName     = "lastName"
	AthenaPatientDOB          = "dob"
	AthenaPatientDepartmentID = "departmentID"
	AthenaPatientEmail        = "email"
)

// DepartmentIDNaN is the wire form of a department id that did not parse.
const DepartmentIDNaN = "NaN"

const (
	ServiceAthenaToken   = "athena_token"
	ServiceAthenaPatient = "athena_patient"
)
