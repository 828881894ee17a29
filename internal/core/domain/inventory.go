package domain

import "github.com/shopspring/decimal"

// InventoryItem is a stocked product.
type InventoryItem struct {
	ItemID   int64           `json:"itemID"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	AuditFields
}
