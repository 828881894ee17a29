package models

import "github.com/shopspring/decimal"

// Customer is a row of the customers table.
type Customer struct {
	CustomerID     int64           `db:"customer_id"`
	Name           string          `db:"name"`
	Phone          string          `db:"phone"`
	Address        string          `db:"address"`
	Notes          string          `db:"notes"`
	IsActive       bool            `db:"is_active"`
	LegacyQuantity decimal.Decimal `db:"legacy_quantity"`
	LegacyPrice    decimal.Decimal `db:"legacy_price"`
	LegacyPaid     decimal.Decimal `db:"legacy_paid"`
	AuditFields
}
