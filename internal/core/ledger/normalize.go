package ledger

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultUnit is shown for orders and returns recorded without a unit.
const DefaultUnit = "pcs"

// Normalize maps every record to exactly one transaction: orders first, then
// payments, then returned orders, each group in input order. Missing, malformed
// or out-of-range numbers count as zero, as do negative quantities and prices.
func Normalize(orders []domain.Order, payments []domain.Payment, returns []domain.ReturnedOrder) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(orders)+len(payments)+len(returns))

	for _, o := range orders {
		qty, price := measure(o.Quantity), measure(o.Price)
		txs = append(txs, domain.Transaction{
			Kind:        domain.KindOrder,
			ID:          o.ID,
			SequenceKey: copyKey(o.SequenceKey),
			Date:        o.Date,
			Description: o.Description,
			Quantity:    qty,
			Unit:        unitOrDefault(o.Unit),
			Price:       price,
			Value:       qty.Mul(price),
			Paid:        amount(o.Paid),
		})
	}

	for _, p := range payments {
		txs = append(txs, domain.Transaction{
			Kind:        domain.KindPayment,
			ID:          p.ID,
			SequenceKey: copyKey(p.SequenceKey),
			Date:        p.Date,
			Description: p.Description,
			Quantity:    decimal.Zero,
			Price:       decimal.Zero,
			Value:       decimal.Zero,
			Paid:        amount(p.Amount),
		})
	}

	for _, r := range returns {
		qty, price := measure(r.Quantity), measure(r.Price)
		returnValue := qty.Mul(price)
		txs = append(txs, domain.Transaction{
			Kind:        domain.KindReturnedOrder,
			ID:          r.ID,
			SequenceKey: copyKey(r.SequenceKey),
			Date:        r.Date,
			Description: r.Description,
			Quantity:    qty,
			Unit:        unitOrDefault(r.Unit),
			Price:       price,
			Value:       returnValue.Neg(),
			Paid:        returnValue,
		})
	}

	return txs
}

func amount(n domain.Numeric) decimal.Decimal {
	v := n.OrZero()
	if !domain.WithinLimits(v) {
		return decimal.Zero
	}
	return v
}

// measure is amount for quantity and price, which also may not be negative
// so that order values stay >= 0 and return values <= 0.
func measure(n domain.Numeric) decimal.Decimal {
	v := amount(n)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return DefaultUnit
	}
	return unit
}

func copyKey(k *int64) *int64 {
	if k == nil {
		return nil
	}
	v := *k
	return &v
}
