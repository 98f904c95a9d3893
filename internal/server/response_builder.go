// internal/server/response_builder.go
package server

// ResponseBuilder constructs the error envelope shared by all API failures.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// BuildErrorResponse constructs a standardized error response.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
}

// BuildHealthResponse constructs the health check payload.
func (rb *ResponseBuilder) BuildHealthResponse() HealthResponse {
	return HealthResponse{Success: true, Status: StatusHealthy}
}
