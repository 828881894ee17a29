package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines the data needed to add a stocked product.
type CreateInventoryItemRequest struct {
	Name     string          `json:"name" binding:"required,notblank,max=200"`
	SKU      string          `json:"sku" binding:"max=64"`
	Unit     string          `json:"unit" binding:"max=20"`
	Quantity decimal.Decimal `json:"quantity" binding:"gte=0"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
}

// UpdateInventoryItemRequest defines the data allowed for updating an item.
type UpdateInventoryItemRequest struct {
	Name     *string          `json:"name" binding:"omitempty,notblank,max=200"`
	SKU      *string          `json:"sku" binding:"omitempty,max=64"`
	Unit     *string          `json:"unit" binding:"omitempty,max=20"`
	Quantity *decimal.Decimal `json:"quantity" binding:"omitempty,gte=0"`
	Price    *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
}

// ListInventoryParams defines query parameters for listing inventory.
type ListInventoryParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// InventoryItemResponse defines the data returned for an inventory item.
type InventoryItemResponse struct {
	ItemID        int64           `json:"itemID"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	StockValue    decimal.Decimal `json:"stockValue"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListInventoryResponse wraps a page of inventory items.
type ListInventoryResponse struct {
	Items     []InventoryItemResponse `json:"items"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its DTO.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:        item.ItemID,
		Name:          item.Name,
		SKU:           item.SKU,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		Price:         item.Price,
		StockValue:    item.Quantity.Mul(item.Price),
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToInventoryItemResponses converts a slice of domain items to DTOs.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i := range items {
		res[i] = ToInventoryItemResponse(&items[i])
	}
	return res
}
