package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table.
type Order struct {
	OrderID     int64           `db:"order_id"`
	CustomerID  int64           `db:"customer_id"`
	SequenceKey int64           `db:"sequence_key"`
	OrderDate   time.Time       `db:"order_date"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	Unit        string          `db:"unit"`
	Price       decimal.Decimal `db:"price"`
	Paid        decimal.Decimal `db:"paid"`
	AuditFields
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID   int64           `db:"payment_id"`
	CustomerID  int64           `db:"customer_id"`
	SequenceKey int64           `db:"sequence_key"`
	PaymentDate time.Time       `db:"payment_date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}

// ReturnedOrder is a row of the returned_orders table.
type ReturnedOrder struct {
	ReturnedOrderID int64           `db:"returned_order_id"`
	CustomerID      int64           `db:"customer_id"`
	SequenceKey     int64           `db:"sequence_key"`
	ReturnDate      time.Time       `db:"return_date"`
	Description     string          `db:"description"`
	Quantity        decimal.Decimal `db:"quantity"`
	Unit            string          `db:"unit"`
	Price           decimal.Decimal `db:"price"`
	AuditFields
}
