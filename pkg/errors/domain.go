package errors

import "net/http"

// Error codes used across the core pipeline. Only STORAGE_WRITE_FAILED is fatal
// to the user action that triggered it; the rest degrade or warn.
const (
	CodeInternal           = "INTERNAL_ERROR"
	CodeAnalysisDegraded   = "ANALYSIS_DEGRADED"
	CodeResponderUnavail   = "RESPONDER_UNAVAILABLE"
	CodeNotificationFailed = "NOTIFICATION_FAILED"
	CodeStorageWriteFailed = "STORAGE_WRITE_FAILED"
)

// NewStorageWriteError wraps a failed EventStore append. Losing a logged event
// (a crisis-flagged one in particular) is the one condition treated as fatal,
// so the caller gets a 500 and may retry.
func NewStorageWriteError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeStorageWriteFailed,
		Message:    "could not commit event to storage",
		Details:    err.Error(),
	}
}

// NewNotificationError wraps a failed outbound alert. Surfaced as a warning with
// the underlying reason, never retried automatically.
func NewNotificationError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusBadGateway,
		Code:       CodeNotificationFailed,
		Message:    "crisis alert could not be delivered",
		Details:    err.Error(),
	}
}
