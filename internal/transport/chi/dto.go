package chi

// Error codes returned in ErrorResponse.Code.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeUnauthorized     = "unauthorized"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternalError    = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is a plain greeting.
type MessageResponse struct {
	Message string `json:"message"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Prompt *string `json:"prompt"`
	Tone   *string `json:"tone,omitempty"`
}

// ChatResponse is the reply to POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
	Tone  string `json:"tone"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// DiagnosticsResponse is the body of GET /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Error            string   `json:"error,omitempty"`
	LatencyMS        int64    `json:"latency_ms"`
}
