package domain

import "github.com/shopspring/decimal"

// Order is a sale to a customer. It increases what the customer owes.
type Order struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerID"`
	SequenceKey *int64  `json:"sequenceKey,omitempty"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Quantity    Numeric `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       Numeric `json:"price"`
	Paid        Numeric `json:"paid"` // amount settled at the time of sale
	AuditFields
}

// Value is quantity times price, treating missing fields as zero.
func (o Order) Value() decimal.Decimal {
	return o.Quantity.OrZero().Mul(o.Price.OrZero())
}

// Payment is money received from a customer.
type Payment struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerID"`
	SequenceKey *int64  `json:"sequenceKey,omitempty"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      Numeric `json:"amount"`
	AuditFields
}

// ReturnedOrder is goods brought back by a customer. It reverses part of an earlier sale.
type ReturnedOrder struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerID"`
	SequenceKey *int64  `json:"sequenceKey,omitempty"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Quantity    Numeric `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       Numeric `json:"price"`
	AuditFields
}

// ReturnValue is quantity times price, treating missing fields as zero.
func (r ReturnedOrder) ReturnValue() decimal.Decimal {
	return r.Quantity.OrZero().Mul(r.Price.OrZero())
}
