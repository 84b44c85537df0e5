package opsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prakarsateknik/opsdesk/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeInsufficientRole    = "insufficient_role"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeAlreadyExists       = "already_exists"
	ErrorCodeUnknownActivityType = "unknown_activity_type"
	ErrorCodeServerError         = "server_error"
	ErrorCodeRateLimitExceeded   = "rate_limit_exceeded"
)

// ============================================================================
// APIError - standard error type
// ============================================================================

// APIError represents a standard error response from the service.
// It implements the error interface and is used both by the server
// (to write HTTP responses) and by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_request")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
// This is used by HTTP handlers to return consistent error responses.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request is missing a required
	// parameter, includes an invalid value, or is otherwise malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned when the email or password is wrong,
	// or a remember token is invalid, expired, or revoked. The description
	// deliberately does not say which.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrInvalidToken is returned when the access token is missing, invalid,
	// expired or revoked.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid, expired or revoked",
	}

	// ErrInsufficientRole is returned when the authenticated role may not
	// access the requested page or operation.
	ErrInsufficientRole = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInsufficientRole,
		Description: "your role does not have access to this resource",
	}

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested record was not found",
	}

	// ErrAlreadyExists is returned when a unique field (email, PO number)
	// collides with an existing record.
	ErrAlreadyExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyExists,
		Description: "a record with the same unique value already exists",
	}

	// ErrUnknownActivityType is returned when a notification dispatch names
	// an activity type outside the catalogue.
	ErrUnknownActivityType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnknownActivityType,
		Description: "unknown activity type",
	}

	// ErrServerError is returned when the service encountered an unexpected
	// condition that prevented it from fulfilling the request.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrMethodNotAllowed is returned when the HTTP method is not allowed.
	ErrMethodNotAllowed = &APIError{
		StatusCode:  http.StatusMethodNotAllowed,
		Code:        ErrorCodeInvalidRequest,
		Description: "method not allowed",
	}
)

// NewAPIError creates a new APIError with the given status code, error code,
// and description. Useful for custom messages while keeping the wire format.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error parsing helpers
// ============================================================================

// parseErrorResponse attempts to parse an HTTP error response into a typed
// APIError. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	// Success responses
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Try parsing as standard error payload
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
