package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain error codes (for
// example INVALID_DATE or INSUFFICIENT_STOCK) pass through unchanged.
const (
	// ErrCodeBadRequest is used for malformed request bodies and parameters
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the requester lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Any code not
// listed here is a client-side validation or business rule failure and maps
// to 400, which covers the whole INVALID_* family, ALREADY_EXISTS and
// INSUFFICIENT_STOCK.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeInternal:       http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
