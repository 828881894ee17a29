package ledger

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyRunningBalances folds the ordered transactions from zero and stores the
// balance after each one. It returns the final balance.
func ApplyRunningBalances(txs []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for i := range txs {
		balance = balance.Add(Delta(txs[i]))
		txs[i].RunningBalance = balance
	}
	return balance
}

// Delta is how much a single transaction moves the customer's balance.
func Delta(tx domain.Transaction) decimal.Decimal {
	switch tx.Kind {
	case domain.KindOrder:
		return tx.Value.Sub(tx.Paid)
	case domain.KindReturnedOrder:
		return tx.Value
	case domain.KindPayment:
		return tx.Paid.Neg()
	default:
		return decimal.Zero
	}
}
