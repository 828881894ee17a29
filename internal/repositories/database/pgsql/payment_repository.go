package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_management_app/internal/models"
	"github.com/SscSPs/shop_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, customer_id, sequence_key, payment_date, description, amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %d: %w", paymentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, notFoundOnNoRows(err, "payment", paymentID)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) ListPaymentsByCustomer(ctx context.Context, customerID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY sequence_key, payment_id;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of customer %d: %w", customerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m, err := mapping.ToModelPayment(payment)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO payments (customer_id, payment_date, description, amount,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING payment_id, sequence_key;
	`
	err = r.withCustomerTx(ctx, m.CustomerID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			m.CustomerID, m.PaymentDate, m.Description, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).Scan(&m.PaymentID, &m.SequenceKey)
	})
	if err != nil {
		return nil, mapWriteError(err, "save payment")
	}
	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m, err := mapping.ToModelPayment(payment)
	if err != nil {
		return err
	}
	query := `
		UPDATE payments
		SET payment_date = $1, description = $2, amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payment_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PaymentDate, m.Description, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentID,
	)
	if err != nil {
		return mapWriteError(err, "update payment")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment")
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment")
	}
	return nil
}
