package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation, Detail: "Key (sku)=(A1) already exists."}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "orders_customer_id_fkey"}, apperrors.ErrValidation},
		{"check violation", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "orders_price_check"}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tt.err, "save order"), tt.target)
		})
	}

	cause := errors.New("connection refused")
	err := mapWriteError(cause, "save order")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save order: connection refused", err.Error())
}

func TestNotFoundOnNoRows(t *testing.T) {
	assert.ErrorIs(t, notFoundOnNoRows(pgx.ErrNoRows, "order", 4), apperrors.ErrNotFound)

	err := notFoundOnNoRows(assert.AnError, "order", 4)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, err, assert.AnError)
}
