package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationInvalidDate     ErrorCode = "VALIDATION_002"
	ValidationInvalidAnalysis ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
)

// Source error codes (SOURCE_*)
const (
	SourceUnavailable ErrorCode = "SOURCE_001"
	SourceNoData      ErrorCode = "SOURCE_002"
)

// Metrics error codes (METRICS_*)
const (
	MetricsDegraded      ErrorCode = "METRICS_001"
	MetricsInconsistent  ErrorCode = "METRICS_002"
	MetricsNoHistory     ErrorCode = "METRICS_003"
	MetricsInvalidPeriod ErrorCode = "METRICS_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	ValidationGeneral:         "Validation failed",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationInvalidAnalysis: "Unknown analysis type",
	ValidationOutOfRange:      "Field value is out of allowed range",

	SourceUnavailable: "One or more data sources are temporarily unavailable",
	SourceNoData:      "No accounts found across any connected source",

	MetricsDegraded:      "Computed metrics failed a sanity bound and were withheld",
	MetricsInconsistent:  "Computed metrics contain a flagged inconsistency",
	MetricsNoHistory:     "No net worth history is available yet",
	MetricsInvalidPeriod: "Invalid trend period",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
