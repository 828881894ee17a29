package ledger

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals sums the ledger. Returned-order Paid is display only and is left out of Paid.
func Totals(txs []domain.Transaction) domain.LedgerTotals {
	total, paid, returned := decimal.Zero, decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case domain.KindOrder:
			total = total.Add(tx.Value)
			paid = paid.Add(tx.Paid)
		case domain.KindPayment:
			paid = paid.Add(tx.Paid)
		case domain.KindReturnedOrder:
			returned = returned.Add(tx.Value.Abs())
		}
	}
	return domain.LedgerTotals{
		Total:     total,
		Paid:      paid,
		Returned:  returned,
		Remaining: total.Sub(returned).Sub(paid),
	}
}

// LegacyTotals derives totals from a customer's legacy aggregate.
func LegacyTotals(legacy domain.LegacyAggregate) domain.LedgerTotals {
	total := amount(legacy.Quantity).Mul(amount(legacy.Price))
	paid := amount(legacy.Paid)
	return domain.LedgerTotals{
		Total:     total,
		Paid:      paid,
		Returned:  decimal.Zero,
		Remaining: total.Sub(paid),
	}
}

// Classify computes totals and the account status. With no transactions it
// falls back to the legacy aggregate.
func Classify(txs []domain.Transaction, legacy domain.LegacyAggregate) (domain.LedgerTotals, domain.AccountStatus, decimal.Decimal) {
	var totals domain.LedgerTotals
	if len(txs) == 0 {
		totals = LegacyTotals(legacy)
		if totals.Total.IsZero() && totals.Paid.IsZero() {
			return totals, domain.StatusNoActivity, decimal.Zero
		}
	} else {
		totals = Totals(txs)
	}

	switch totals.Remaining.Sign() {
	case 1:
		return totals, domain.StatusOutstanding, totals.Remaining
	case -1:
		return totals, domain.StatusCredit, totals.Remaining.Abs()
	default:
		return totals, domain.StatusSettled, decimal.Zero
	}
}
