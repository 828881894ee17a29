// Package ledger turns a customer's orders, payments and returned orders into
// one ordered statement with running balances, totals and an account status.
//
// Everything here is pure: no I/O, no shared state, and inputs are never mutated.
package ledger

import "github.com/SscSPs/shop_management_app/internal/core/domain"

// Compute builds the ledger of one customer. The customer's legacy aggregate
// is used only when there are no records at all.
func Compute(customer domain.Customer, orders []domain.Order, payments []domain.Payment, returns []domain.ReturnedOrder) domain.LedgerResult {
	txs := Sequence(Normalize(orders, payments, returns))
	ApplyRunningBalances(txs)
	totals, status, amount := Classify(txs, customer.Legacy)

	return domain.LedgerResult{
		CustomerID:   customer.CustomerID,
		CustomerName: customer.Name,
		Transactions: txs,
		Totals:       totals,
		Status:       status,
		StatusAmount: amount,
		UsedLegacy:   len(txs) == 0 && status != domain.StatusNoActivity,
	}
}
