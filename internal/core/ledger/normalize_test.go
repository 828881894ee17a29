package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_GroupOrderAndShape(t *testing.T) {
	orders := []domain.Order{
		{ID: 7, Date: "2024-05-01", Description: "rice", Quantity: num(4), Unit: "kg", Price: num(60), Paid: num(100)},
		{ID: 2, Date: "2024-04-01", Quantity: num(1), Price: num(30)},
	}
	payments := []domain.Payment{{ID: 3, Date: "2024-05-02", Description: "cash", Amount: num(140)}}
	returns := []domain.ReturnedOrder{{ID: 1, Date: "2024-05-03", Quantity: num(1), Unit: "kg", Price: num(60)}}

	txs := ledger.Normalize(orders, payments, returns)

	require.Len(t, txs, 4)
	assert.Equal(t, []int64{7, 2, 3, 1}, []int64{txs[0].ID, txs[1].ID, txs[2].ID, txs[3].ID})

	order := txs[0]
	assert.Equal(t, domain.KindOrder, order.Kind)
	assert.Equal(t, "kg", order.Unit)
	assertDecimal(t, 240, order.Value)
	assertDecimal(t, 100, order.Paid)

	assert.Equal(t, ledger.DefaultUnit, txs[1].Unit)

	payment := txs[2]
	assert.Equal(t, domain.KindPayment, payment.Kind)
	assert.Empty(t, payment.Unit)
	assertDecimal(t, 0, payment.Value)
	assertDecimal(t, 0, payment.Quantity)
	assertDecimal(t, 140, payment.Paid)

	ret := txs[3]
	assert.Equal(t, domain.KindReturnedOrder, ret.Kind)
	assertDecimal(t, -60, ret.Value)
	assertDecimal(t, 60, ret.Paid)
}

func TestNormalize_MalformedNumbersCountAsZero(t *testing.T) {
	orders := []domain.Order{{ID: 1, Quantity: domain.Numeric{}, Price: num(10)}}
	payments := []domain.Payment{{ID: 1}}
	returns := []domain.ReturnedOrder{{ID: 1, Quantity: num(-2), Price: num(10)}}

	txs := ledger.Normalize(orders, payments, returns)

	require.Len(t, txs, 3)
	for _, tx := range txs {
		assertDecimal(t, 0, tx.Value, string(tx.Kind))
		assertDecimal(t, 0, tx.Paid, string(tx.Kind))
	}
}

func TestNormalize_NegativeSettlementsKept(t *testing.T) {
	orders := []domain.Order{{ID: 1, Quantity: num(2), Price: num(10), Paid: num(-5)}}
	payments := []domain.Payment{{ID: 1, Amount: num(-20)}}

	txs := ledger.Normalize(orders, payments, nil)

	require.Len(t, txs, 2)
	assertDecimal(t, 20, txs[0].Value)
	assertDecimal(t, -5, txs[0].Paid)
	assertDecimal(t, -20, txs[1].Paid)
}

func TestNormalize_OutOfRangeNumbersCountAsZero(t *testing.T) {
	var orders []domain.Order
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "date": "2024-03-01", "quantity": "1e2000000000", "price": "1e2000000000"},
		{"id": 2, "date": "2024-03-02", "quantity": "1e3000000", "price": 4}
	]`), &orders))
	payments := []domain.Payment{{ID: 1, Amount: domain.NewNumeric(decimal.New(1, 40))}}
	returns := []domain.ReturnedOrder{{ID: 1, Quantity: domain.NewNumeric(decimal.New(5, 1_000_000)), Price: num(3)}}

	var res domain.LedgerResult
	require.NotPanics(t, func() {
		res = ledger.Compute(domain.Customer{CustomerID: 1}, orders, payments, returns)
	})

	require.Len(t, res.Transactions, 4)
	for _, tx := range res.Transactions {
		assertDecimal(t, 0, tx.Value, string(tx.Kind))
		assertDecimal(t, 0, tx.Paid, string(tx.Kind))
	}
	assertTotals(t, res, 0, 0, 0, 0)
	assert.Equal(t, domain.StatusSettled, res.Status)
}

func TestNormalize_CopiesSequenceKeys(t *testing.T) {
	orders := []domain.Order{{ID: 1, SequenceKey: key(11)}}

	txs := ledger.Normalize(orders, nil, nil)
	*txs[0].SequenceKey = 99

	assert.Equal(t, int64(11), *orders[0].SequenceKey)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, ledger.Normalize(nil, nil, nil))
}
