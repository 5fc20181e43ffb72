package responses

// RelayErrorResponse is the only error shape of POST /register.
type RelayErrorResponse struct {
	Error interface{} `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
}
