package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// InventorySvcFacade manages the stock list.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, *string, error)
	UpdateItem(ctx context.Context, itemID int64, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID int64, userID string) error
}
