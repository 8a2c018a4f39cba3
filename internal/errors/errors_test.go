package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navyashreebh2-create/diary-baby/internal/ai"
	"github.com/navyashreebh2-create/diary-baby/internal/auth"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation",
			err:         NewValidation("Please write something before submitting"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Please write something before submitting",
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("create entry: %w", NewValidation("Name is required")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:        "invalid credentials",
			err:         ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "INVALID_CREDENTIALS",
			wantMessage: "Invalid email or password",
		},
		{
			name:       "email taken",
			err:        ErrEmailTaken,
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_TAKEN",
		},
		{
			name:       "user not found",
			err:        ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:        "expired token",
			err:         auth.ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "SESSION_INVALID",
			wantMessage: "Your session has expired. Please log in again",
		},
		{
			name:        "invalid token reported identically",
			err:         auth.ErrTokenInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "SESSION_INVALID",
			wantMessage: "Your session has expired. Please log in again",
		},
		{
			name:       "ai invalid key",
			err:        &ai.Error{Kind: ai.KindInvalidKey, Message: "Invalid OpenAI API key. Please check your API key and try again."},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   "AI_KEY_ERROR",
		},
		{
			name:       "ai quota",
			err:        &ai.Error{Kind: ai.KindQuotaExceeded, Message: "OpenAI API quota exceeded. Please check your billing details and try again."},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   "AI_KEY_ERROR",
		},
		{
			name:       "ai network",
			err:        &ai.Error{Kind: ai.KindNetwork, Message: "Network error. Please check your internet connection."},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "AI_UNAVAILABLE",
		},
		{
			name:        "unknown error is opaque",
			err:         errors.New("pq: connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, he.StatusCode)
			assert.Equal(t, tt.wantCode, he.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, he.Message)
			}
			// Internals never surface verbatim.
			if tt.wantCode == "INTERNAL_ERROR" {
				assert.NotContains(t, he.Message, "pq:")
			}
		})
	}
}
