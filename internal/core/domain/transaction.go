package domain

import "github.com/shopspring/decimal"

// TransactionKind tells which source record a ledger line came from.
type TransactionKind string

const (
	KindOrder         TransactionKind = "order"
	KindPayment       TransactionKind = "payment"
	KindReturnedOrder TransactionKind = "returned_order"
)

// Transaction is one line of a customer ledger. It is derived on every
// computation and never persisted.
//
// Value is non-negative for orders, non-positive for returned orders and zero
// for payments. For returned orders Paid mirrors the return value for display
// and does not count as a settlement.
type Transaction struct {
	Kind           TransactionKind `json:"kind"`
	ID             int64           `json:"id"`
	SequenceKey    *int64          `json:"sequenceKey,omitempty"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	Value          decimal.Decimal `json:"value"`
	Paid           decimal.Decimal `json:"paid"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	LocalIndex     int             `json:"localIndex"`
}
