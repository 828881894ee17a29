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

const inventoryColumns = `item_id, name, sku, unit, quantity, price, created_at, created_by, last_updated_at, last_updated_by`

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxInventoryRepository(pool *pgxpool.Pool) *PgxInventoryRepository {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory item %d: %w", itemID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.InventoryItem])
	if err != nil {
		return nil, notFoundOnNoRows(err, "inventory item", itemID)
	}
	item := mapping.ToDomainInventoryItem(m)
	return &item, nil
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context, limit int, after *portsrepo.PageCursor) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	var afterName *string
	var afterID int64
	if after != nil {
		afterName, afterID = &after.Key, after.ID
	}

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE $1::text IS NULL OR (name, item_id) > ($1::text, $2::bigint)
		ORDER BY name, item_id
		LIMIT $3;
	`
	rows, err := r.pool.Query(ctx, query, afterName, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InventoryItem])
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory rows: %w", err)
	}
	return mapping.ToDomainInventoryItemSlice(ms), nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (name, sku, unit, quantity, price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING item_id;
	`
	err := r.pool.QueryRow(ctx, query,
		m.Name, m.SKU, m.Unit, m.Quantity, m.Price,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&item.ItemID)
	if err != nil {
		return nil, mapWriteError(err, "save inventory item")
	}
	return &item, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		UPDATE inventory_items
		SET name = $1, sku = $2, unit = $3, quantity = $4, price = $5, last_updated_at = $6, last_updated_by = $7
		WHERE item_id = $8;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.Name, m.SKU, m.Unit, m.Quantity, m.Price, m.LastUpdatedAt, m.LastUpdatedBy, m.ItemID,
	)
	if err != nil {
		return mapWriteError(err, "update inventory item")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("inventory item")
	}
	return nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %d: %w", itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("inventory item")
	}
	return nil
}
