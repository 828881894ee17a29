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

const orderColumns = `order_id, customer_id, sequence_key, order_date, description, quantity, unit, price, paid,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %d: %w", orderID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Order])
	if err != nil {
		return nil, notFoundOnNoRows(err, "order", orderID)
	}
	o := mapping.ToDomainOrder(m)
	return &o, nil
}

func (r *PgxOrderRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY sequence_key, order_id;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders of customer %d: %w", customerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Order])
	if err != nil {
		return nil, fmt.Errorf("failed to scan order rows: %w", err)
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	m, err := mapping.ToModelOrder(order)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO orders (customer_id, order_date, description, quantity, unit, price, paid,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING order_id, sequence_key;
	`
	err = r.withCustomerTx(ctx, m.CustomerID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			m.CustomerID, m.OrderDate, m.Description, m.Quantity, m.Unit, m.Price, m.Paid,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).Scan(&m.OrderID, &m.SequenceKey)
	})
	if err != nil {
		return nil, mapWriteError(err, "save order")
	}
	saved := mapping.ToDomainOrder(m)
	return &saved, nil
}

func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m, err := mapping.ToModelOrder(order)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders
		SET order_date = $1, description = $2, quantity = $3, unit = $4, price = $5, paid = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE order_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.OrderDate, m.Description, m.Quantity, m.Unit, m.Price, m.Paid,
		m.LastUpdatedAt, m.LastUpdatedBy, m.OrderID,
	)
	if err != nil {
		return mapWriteError(err, "update order")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order")
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order")
	}
	return nil
}
