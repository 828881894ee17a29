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

const returnedOrderColumns = `returned_order_id, customer_id, sequence_key, return_date, description, quantity, unit, price,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxReturnedOrderRepository struct {
	BaseRepository
}

func newPgxReturnedOrderRepository(pool *pgxpool.Pool) *PgxReturnedOrderRepository {
	return &PgxReturnedOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReturnedOrderRepositoryFacade = (*PgxReturnedOrderRepository)(nil)

func (r *PgxReturnedOrderRepository) FindReturnedOrderByID(ctx context.Context, returnedOrderID int64) (*domain.ReturnedOrder, error) {
	query := `SELECT ` + returnedOrderColumns + ` FROM returned_orders WHERE returned_order_id = $1;`
	rows, err := r.Pool.Query(ctx, query, returnedOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returned order %d: %w", returnedOrderID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ReturnedOrder])
	if err != nil {
		return nil, notFoundOnNoRows(err, "returned order", returnedOrderID)
	}
	ro := mapping.ToDomainReturnedOrder(m)
	return &ro, nil
}

func (r *PgxReturnedOrderRepository) ListReturnedOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.ReturnedOrder, error) {
	query := `SELECT ` + returnedOrderColumns + ` FROM returned_orders WHERE customer_id = $1 ORDER BY sequence_key, returned_order_id;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returned orders of customer %d: %w", customerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReturnedOrder])
	if err != nil {
		return nil, fmt.Errorf("failed to scan returned order rows: %w", err)
	}
	return mapping.ToDomainReturnedOrderSlice(ms), nil
}

func (r *PgxReturnedOrderRepository) SaveReturnedOrder(ctx context.Context, returned domain.ReturnedOrder) (*domain.ReturnedOrder, error) {
	m, err := mapping.ToModelReturnedOrder(returned)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO returned_orders (customer_id, return_date, description, quantity, unit, price,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING returned_order_id, sequence_key;
	`
	err = r.withCustomerTx(ctx, m.CustomerID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			m.CustomerID, m.ReturnDate, m.Description, m.Quantity, m.Unit, m.Price,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).Scan(&m.ReturnedOrderID, &m.SequenceKey)
	})
	if err != nil {
		return nil, mapWriteError(err, "save returned order")
	}
	saved := mapping.ToDomainReturnedOrder(m)
	return &saved, nil
}

func (r *PgxReturnedOrderRepository) UpdateReturnedOrder(ctx context.Context, returned domain.ReturnedOrder) error {
	m, err := mapping.ToModelReturnedOrder(returned)
	if err != nil {
		return err
	}
	query := `
		UPDATE returned_orders
		SET return_date = $1, description = $2, quantity = $3, unit = $4, price = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE returned_order_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ReturnDate, m.Description, m.Quantity, m.Unit, m.Price,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ReturnedOrderID,
	)
	if err != nil {
		return mapWriteError(err, "update returned order")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("returned order")
	}
	return nil
}

func (r *PgxReturnedOrderRepository) DeleteReturnedOrder(ctx context.Context, returnedOrderID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM returned_orders WHERE returned_order_id = $1;`, returnedOrderID)
	if err != nil {
		return fmt.Errorf("failed to delete returned order %d: %w", returnedOrderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("returned order")
	}
	return nil
}
