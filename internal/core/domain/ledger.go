package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus summarises where a customer's account stands.
type AccountStatus string

const (
	StatusOutstanding AccountStatus = "outstanding" // customer owes the shop
	StatusCredit      AccountStatus = "credit"      // shop owes the customer
	StatusSettled     AccountStatus = "settled"
	StatusNoActivity  AccountStatus = "no_activity"
)

// LedgerTotals are the aggregate figures of a ledger.
type LedgerTotals struct {
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Returned  decimal.Decimal `json:"returned"`
	Remaining decimal.Decimal `json:"remaining"`
}

// LedgerResult is the computed ledger of one customer.
type LedgerResult struct {
	CustomerID   int64           `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Transactions []Transaction   `json:"transactions"`
	Totals       LedgerTotals    `json:"totals"`
	Status       AccountStatus   `json:"status"`
	StatusAmount decimal.Decimal `json:"statusAmount"`
	// UsedLegacy is set when totals came from the customer's legacy aggregate.
	UsedLegacy bool `json:"usedLegacy"`
}

// LedgerStatement is a computed ledger together with how it was produced.
type LedgerStatement struct {
	LedgerResult
	// DegradedSources lists record sources that could not be read and were
	// treated as empty for this computation.
	DegradedSources []string  `json:"degradedSources"`
	ComputedAt      time.Time `json:"computedAt"`
	FromCache       bool      `json:"fromCache"`
}
