package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_management_app/internal/models"
	"github.com/SscSPs/shop_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, name, phone, address, notes, is_active, legacy_quantity, legacy_price, legacy_paid,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %d: %w", customerID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, notFoundOnNoRows(err, "customer", customerID)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, after *portsrepo.PageCursor, includeInactive bool) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	var afterName *string
	var afterID int64
	if after != nil {
		afterName, afterID = &after.Key, after.ID
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ($1::boolean OR is_active)
		  AND ($2::text IS NULL OR (name, customer_id) > ($2::text, $3::bigint))
		ORDER BY name, customer_id
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, includeInactive, afterName, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (name, phone, address, notes, is_active, legacy_quantity, legacy_price, legacy_paid,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING customer_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Phone, m.Address, m.Notes, m.IsActive,
		m.LegacyQuantity, m.LegacyPrice, m.LegacyPaid,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&customer.CustomerID)
	if err != nil {
		return nil, mapWriteError(err, "save customer")
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $1, phone = $2, address = $3, notes = $4,
			legacy_quantity = $5, legacy_price = $6, legacy_paid = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Phone, m.Address, m.Notes,
		m.LegacyQuantity, m.LegacyPrice, m.LegacyPaid,
		m.LastUpdatedAt, m.LastUpdatedBy, m.CustomerID,
	)
	if err != nil {
		return mapWriteError(err, "update customer")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("customer")
	}
	return nil
}

func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, customerID int64, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE customer_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, customerID)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer %d: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("customer")
	}
	return nil
}
