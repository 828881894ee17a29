package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLineResponse is one statement row. Value and RunningBalance are
// absolute for display; the signed figures are kept alongside.
type LedgerLineResponse struct {
	LocalIndex           int                    `json:"localIndex"`
	Kind                 domain.TransactionKind `json:"kind"`
	ID                   int64                  `json:"id"`
	Date                 string                 `json:"date"`
	Description          string                 `json:"description"`
	Quantity             decimal.Decimal        `json:"quantity"`
	Unit                 string                 `json:"unit"`
	Price                decimal.Decimal        `json:"price"`
	Value                decimal.Decimal        `json:"value"`
	Paid                 decimal.Decimal        `json:"paid"`
	RunningBalance       decimal.Decimal        `json:"runningBalance"`
	SignedValue          decimal.Decimal        `json:"signedValue"`
	SignedRunningBalance decimal.Decimal        `json:"signedRunningBalance"`
}

// LedgerTotalsResponse mirrors domain.LedgerTotals.
type LedgerTotalsResponse struct {
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Returned  decimal.Decimal `json:"returned"`
	Remaining decimal.Decimal `json:"remaining"`
}

// LedgerResponse is the statement of one customer.
type LedgerResponse struct {
	CustomerID      int64                `json:"customerID"`
	CustomerName    string               `json:"customerName"`
	Transactions    []LedgerLineResponse `json:"transactions"`
	Totals          LedgerTotalsResponse `json:"totals"`
	Status          domain.AccountStatus `json:"status"`
	StatusAmount    decimal.Decimal      `json:"statusAmount"`
	UsedLegacy      bool                 `json:"usedLegacy"`
	DegradedSources []string             `json:"degradedSources,omitempty"`
	ComputedAt      *time.Time           `json:"computedAt,omitempty"`
}

// ComputeLedgerCustomer is the customer part of a compute request.
type ComputeLedgerCustomer struct {
	CustomerID int64                  `json:"customerID"`
	Name       string                 `json:"name"`
	Legacy     domain.LegacyAggregate `json:"legacy"`
}

// ComputeLedgerRequest runs the ledger engine over raw records. Numeric
// fields are lenient: malformed values count as zero.
type ComputeLedgerRequest struct {
	Customer       ComputeLedgerCustomer  `json:"customer"`
	Orders         []domain.Order         `json:"orders"`
	Payments       []domain.Payment       `json:"payments"`
	ReturnedOrders []domain.ReturnedOrder `json:"returnedOrders"`
}

// ToCustomer builds the domain customer the engine needs.
func (c ComputeLedgerCustomer) ToCustomer() domain.Customer {
	return domain.Customer{CustomerID: c.CustomerID, Name: c.Name, Legacy: c.Legacy, IsActive: true}
}

// ToLedgerResponse converts a computed ledger to its DTO.
func ToLedgerResponse(res domain.LedgerResult) LedgerResponse {
	lines := make([]LedgerLineResponse, len(res.Transactions))
	for i, tx := range res.Transactions {
		lines[i] = LedgerLineResponse{
			LocalIndex:           tx.LocalIndex,
			Kind:                 tx.Kind,
			ID:                   tx.ID,
			Date:                 tx.Date,
			Description:          tx.Description,
			Quantity:             tx.Quantity,
			Unit:                 tx.Unit,
			Price:                tx.Price,
			Value:                tx.Value.Abs(),
			Paid:                 tx.Paid,
			RunningBalance:       tx.RunningBalance.Abs(),
			SignedValue:          tx.Value,
			SignedRunningBalance: tx.RunningBalance,
		}
	}
	return LedgerResponse{
		CustomerID:   res.CustomerID,
		CustomerName: res.CustomerName,
		Transactions: lines,
		Totals: LedgerTotalsResponse{
			Total:     res.Totals.Total,
			Paid:      res.Totals.Paid,
			Returned:  res.Totals.Returned,
			Remaining: res.Totals.Remaining,
		},
		Status:       res.Status,
		StatusAmount: res.StatusAmount,
		UsedLegacy:   res.UsedLegacy,
	}
}

// ToLedgerStatementResponse adds the statement metadata to ToLedgerResponse.
func ToLedgerStatementResponse(st *domain.LedgerStatement) LedgerResponse {
	resp := ToLedgerResponse(st.LedgerResult)
	resp.DegradedSources = st.DegradedSources
	computedAt := st.ComputedAt
	resp.ComputedAt = &computedAt
	return resp
}
