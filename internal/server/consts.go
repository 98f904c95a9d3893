package server

const (
	HealthEndpoint         = "/health"
	CharacterPositionsPath = "/api/characterpositions"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "requestID"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageInvalidRequestBody = "Invalid request body"
	MessageInternalError      = "Character positions could not be computed"
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
	ErrorCodeInternal           = "internal_error"
	ErrorCodeRequestCancelled   = "request_cancelled"
)

const corsWildcard = "*"

var (
	corsAllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsAllowHeaders = []string{"Content-Type", HeaderRequestID}
)
