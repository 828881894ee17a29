package repositories

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory items
type InventoryReader interface {
	FindItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error)

	// ListItems returns up to limit items ordered by name then id, starting after the cursor.
	ListItems(ctx context.Context, limit int, after *PageCursor) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory items
type InventoryWriter interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID int64) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
