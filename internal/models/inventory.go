package models

import "github.com/shopspring/decimal"

// InventoryItem is a row of the inventory_items table.
type InventoryItem struct {
	ItemID   int64           `db:"item_id"`
	Name     string          `db:"name"`
	SKU      string          `db:"sku"`
	Unit     string          `db:"unit"`
	Quantity decimal.Decimal `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
	AuditFields
}
