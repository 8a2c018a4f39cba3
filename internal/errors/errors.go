package errors

import (
	"errors"
	"net/http"

	"github.com/navyashreebh2-create/diary-baby/internal/ai"
	"github.com/navyashreebh2-create/diary-baby/internal/auth"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Deliberately opaque: it never says which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserNotFound is returned when a user lookup by id finds nothing.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a validation error with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Upstream provider
// internals never pass through; unanticipated errors collapse to an opaque
// 500 message.
func MapErrorToHTTP(err error) *HTTPError {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return NewHTTPError(http.StatusBadRequest, validation.Message, "VALIDATION_ERROR")
	}

	var aiErr *ai.Error
	if errors.As(err, &aiErr) {
		switch aiErr.Kind {
		case ai.KindInvalidKey, ai.KindQuotaExceeded:
			// Payment-required class: the key itself is unusable.
			return NewHTTPError(http.StatusPaymentRequired, aiErr.Message, "AI_KEY_ERROR")
		default:
			return NewHTTPError(http.StatusInternalServerError, aiErr.Message, "AI_UNAVAILABLE")
		}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "Email already exists", "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found", "USER_NOT_FOUND")
	case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenInvalid):
		return NewHTTPError(http.StatusUnauthorized, "Your session has expired. Please log in again", "SESSION_INVALID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong. Please try again.", "INTERNAL_ERROR")
	}
}
