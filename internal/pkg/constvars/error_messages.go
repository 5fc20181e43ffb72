package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"url":      "must be a valid URL",
	"min":      "must be at least %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"gte":   true,
	"oneof": true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientFailedToRetrieveAccessToken   = "Failed to retrieve access token"
	ErrClientOriginNotAllowed              = "origin not allowed"
	ErrClientTooManyRequests               = "too many requests"
)

const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevOriginNotAllowed         = "origin %s is not in the allowed origins"
	ErrDevAthenaTokenExchange      = "athena client credentials exchange failed"
	ErrDevAthenaTokenEmpty         = "athena token response has no access_token"
	ErrDevInvalidConfiguration     = "invalid configuration"
	ErrDevUpstreamUnexpectedStatus = "upstream responded with status %d"
)
