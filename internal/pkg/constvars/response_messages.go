package constvars

const (
	ResponseUnknown = "unknown"
	ResponseError   = "error"

	HealthStatusUp = "UP"
)
