package utils

// Structured log field names shared across packages.
const (
	FieldComponent    = "component"
	FieldRequestID    = "request_id"
	FieldMethod       = "method"
	FieldPath         = "path"
	FieldStatus       = "status_code"
	FieldDuration     = "duration"
	FieldHost         = "host"
	FieldPort         = "port"
	FieldSignal       = "signal"
	FieldMatchCount   = "match_count"
	FieldFailureCount = "failure_count"
	FieldFailureCodes = "failure_codes"
	FieldURL          = "url"
)
