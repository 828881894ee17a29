package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("loading customer: %w", apperrors.NewNotFoundError("customer"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "loading customer: customer not found", err.Error())
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found sentinel", fmt.Errorf("x: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"validation sentinel", apperrors.ErrValidation, http.StatusBadRequest},
		{"duplicate sentinel", apperrors.ErrDuplicate, http.StatusConflict},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"conflict app error", apperrors.NewConflictError("sku taken"), http.StatusConflict},
		{"validation app error", apperrors.NewValidationError("bad date"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}
