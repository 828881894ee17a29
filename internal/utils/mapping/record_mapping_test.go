package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
	"github.com/SscSPs/shop_management_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainOrder_FormatsDateAndKeepsSequenceKey(t *testing.T) {
	m := models.Order{
		OrderID:     12,
		CustomerID:  3,
		SequenceKey: 88,
		OrderDate:   time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC),
		Quantity:    decimal.NewFromInt(2),
		Price:       decimal.RequireFromString("12.50"),
		Paid:        decimal.Zero,
	}

	d := mapping.ToDomainOrder(m)

	assert.Equal(t, "2024-07-09", d.Date)
	require.NotNil(t, d.SequenceKey)
	assert.Equal(t, int64(88), *d.SequenceKey)
	assert.True(t, d.Value().Equal(decimal.NewFromInt(25)))
	assert.True(t, d.Paid.Valid)
}

func TestToModelPayment_RejectsBadDate(t *testing.T) {
	_, err := mapping.ToModelPayment(domain.Payment{Date: "09/07/2024"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToModelReturnedOrder_MissingNumbersBecomeZero(t *testing.T) {
	m, err := mapping.ToModelReturnedOrder(domain.ReturnedOrder{Date: "2024-01-05", Unit: "kg"})

	require.NoError(t, err)
	assert.True(t, m.Quantity.IsZero())
	assert.True(t, m.Price.IsZero())
	assert.Equal(t, int64(0), m.SequenceKey)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), m.ReturnDate)
}

func TestCustomerRoundTripKeepsLegacy(t *testing.T) {
	c := domain.Customer{
		CustomerID: 5,
		Name:       "Ravi",
		Legacy:     domain.LegacyAggregate{Quantity: domain.NumericFromInt(3), Price: domain.NumericFromInt(10)},
	}

	back := mapping.ToDomainCustomer(mapping.ToModelCustomer(c))

	assert.Equal(t, "Ravi", back.Name)
	assert.True(t, back.Legacy.Quantity.OrZero().Equal(decimal.NewFromInt(3)))
	assert.True(t, back.Legacy.Paid.OrZero().IsZero())
}
