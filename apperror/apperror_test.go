package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("missing fields", nil), http.StatusBadRequest},
		{"auth", NewAuthError("username or password incorrect", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("invalid token", nil), http.StatusUnauthorized},
		{"not found", NewNotFoundError("user not found", nil), http.StatusNotFound},
		{"conflict", NewConflictError("username already taken", nil), http.StatusBadRequest},
		{"database", NewDatabaseError("query failed", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "?", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponseHidesUnderlyingError(t *testing.T) {
	underlying := errors.New("pq: duplicate key value violates unique constraint")
	appErr := NewConflictError("username already taken", underlying)

	resp := appErr.ToResponse()
	assert.Equal(t, "username already taken", resp.Error)

	// Error() keeps the detail for logs.
	assert.Contains(t, appErr.Error(), "duplicate key")
}

func TestUnwrapAndErrorsAs(t *testing.T) {
	underlying := errors.New("no rows")
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("user not found", underlying))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsAuthError(wrapped))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, underlying, appErr.Unwrap())
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewValidationError("bad", nil))
	assert.True(t, ok)
	assert.Equal(t, ValidationError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}
