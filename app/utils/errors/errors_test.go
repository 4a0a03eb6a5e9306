package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnauthorized, "authentication required"),
			expected: "UNAUTHORIZED: authentication required",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDatabaseError, "query failed", errors.New("connection refused")),
			expected: "DATABASE_ERROR: query failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(ErrCodeInternalError, "something broke", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_Builders(t *testing.T) {
	t.Run("WithDetails", func(t *testing.T) {
		err := New(ErrCodeForbidden, "access denied").WithDetails("role employee not allowed")
		assert.Equal(t, "role employee not allowed", err.Details)
	})

	t.Run("WithContext", func(t *testing.T) {
		err := New(ErrCodeClientNotFound, "client not found").
			WithContext("client_id", "c-123").
			WithContext("user_id", "u-456")
		assert.Equal(t, "c-123", err.Context["client_id"])
		assert.Equal(t, "u-456", err.Context["user_id"])
	})

	t.Run("Newf", func(t *testing.T) {
		err := Newf(ErrCodeNotFound, "%s not found", "blog post")
		assert.Equal(t, "blog post not found", err.Message)
	})

	t.Run("Wrapf", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrapf(ErrCodeDatabaseError, cause, "insert into %s failed", "client_grants")
		assert.Equal(t, "insert into client_grants failed", err.Message)
		assert.Equal(t, cause, err.Cause)
	})
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeSessionExpired, http.StatusUnauthorized},
		{ErrCodeProfileNotFound, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeClientMismatch, http.StatusForbidden},
		{ErrCodeClientSuspended, http.StatusForbidden},
		{ErrCodeClientContextRequired, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeClientNotFound, http.StatusNotFound},
		{ErrCodeGrantNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeIdentityProvider, http.StatusServiceUnavailable},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.code, "message").StatusCode)
		})
	}
}

func TestErrorInspection(t *testing.T) {
	t.Run("IsAppError", func(t *testing.T) {
		assert.True(t, IsAppError(New(ErrCodeBadRequest, "bad")))
		assert.True(t, IsAppError(fmt.Errorf("wrapped: %w", New(ErrCodeBadRequest, "bad"))))
		assert.False(t, IsAppError(errors.New("plain")))
	})

	t.Run("AsAppError", func(t *testing.T) {
		original := New(ErrCodeConflict, "conflict")
		appErr, ok := AsAppError(fmt.Errorf("wrapped: %w", original))
		require.True(t, ok)
		assert.Equal(t, ErrCodeConflict, appErr.Code)

		_, ok = AsAppError(errors.New("plain"))
		assert.False(t, ok)
	})

	t.Run("GetErrorCode", func(t *testing.T) {
		assert.Equal(t, ErrCodeForbidden, GetErrorCode(ErrForbidden))
		assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
	})

	t.Run("GetHTTPStatusCode", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatusCode(ErrUnauthorized))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
	})
}

func TestContextualHelpers(t *testing.T) {
	t.Run("NewUnauthorized", func(t *testing.T) {
		err := NewUnauthorized("no session credential")
		assert.Equal(t, ErrCodeUnauthorized, err.Code)
		assert.Equal(t, "no session credential", err.Details)
	})

	t.Run("NewIdentityProviderError", func(t *testing.T) {
		cause := errors.New("kratos unreachable")
		err := NewIdentityProviderError(cause)
		assert.Equal(t, ErrCodeIdentityProvider, err.Code)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	})

	t.Run("NewDatabaseError", func(t *testing.T) {
		cause := errors.New("deadlock")
		err := NewDatabaseError(cause)
		assert.Equal(t, ErrCodeDatabaseError, err.Code)
		assert.True(t, errors.Is(err, cause))
	})
}
