package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ParseRecordDate parses a YYYY-MM-DD record date.
func ParseRecordDate(date string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrValidation, date)
	}
	return t, nil
}

// FormatRecordDate renders a DATE column value as YYYY-MM-DD.
func FormatRecordDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func sequenceKey(d *int64) int64 {
	if d == nil {
		return 0
	}
	return *d
}

func sequenceKeyPtr(v int64) *int64 {
	return &v
}

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) (models.Order, error) {
	date, err := ParseRecordDate(d.Date)
	if err != nil {
		return models.Order{}, err
	}
	return models.Order{
		OrderID:     d.ID,
		CustomerID:  d.CustomerID,
		SequenceKey: sequenceKey(d.SequenceKey),
		OrderDate:   date,
		Description: d.Description,
		Quantity:    d.Quantity.OrZero(),
		Unit:        d.Unit,
		Price:       d.Price.OrZero(),
		Paid:        d.Paid.OrZero(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		ID:          m.OrderID,
		CustomerID:  m.CustomerID,
		SequenceKey: sequenceKeyPtr(m.SequenceKey),
		Date:        FormatRecordDate(m.OrderDate),
		Description: m.Description,
		Quantity:    domain.NewNumeric(m.Quantity),
		Unit:        m.Unit,
		Price:       domain.NewNumeric(m.Price),
		Paid:        domain.NewNumeric(m.Paid),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) (models.Payment, error) {
	date, err := ParseRecordDate(d.Date)
	if err != nil {
		return models.Payment{}, err
	}
	return models.Payment{
		PaymentID:   d.ID,
		CustomerID:  d.CustomerID,
		SequenceKey: sequenceKey(d.SequenceKey),
		PaymentDate: date,
		Description: d.Description,
		Amount:      d.Amount.OrZero(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:          m.PaymentID,
		CustomerID:  m.CustomerID,
		SequenceKey: sequenceKeyPtr(m.SequenceKey),
		Date:        FormatRecordDate(m.PaymentDate),
		Description: m.Description,
		Amount:      domain.NewNumeric(m.Amount),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReturnedOrder converts a domain ReturnedOrder to a model ReturnedOrder
func ToModelReturnedOrder(d domain.ReturnedOrder) (models.ReturnedOrder, error) {
	date, err := ParseRecordDate(d.Date)
	if err != nil {
		return models.ReturnedOrder{}, err
	}
	return models.ReturnedOrder{
		ReturnedOrderID: d.ID,
		CustomerID:      d.CustomerID,
		SequenceKey:     sequenceKey(d.SequenceKey),
		ReturnDate:      date,
		Description:     d.Description,
		Quantity:        d.Quantity.OrZero(),
		Unit:            d.Unit,
		Price:           d.Price.OrZero(),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainReturnedOrder converts a model ReturnedOrder to a domain ReturnedOrder
func ToDomainReturnedOrder(m models.ReturnedOrder) domain.ReturnedOrder {
	return domain.ReturnedOrder{
		ID:          m.ReturnedOrderID,
		CustomerID:  m.CustomerID,
		SequenceKey: sequenceKeyPtr(m.SequenceKey),
		Date:        FormatRecordDate(m.ReturnDate),
		Description: m.Description,
		Quantity:    domain.NewNumeric(m.Quantity),
		Unit:        m.Unit,
		Price:       domain.NewNumeric(m.Price),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders to a slice of domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToDomainReturnedOrderSlice converts a slice of model ReturnedOrders to a slice of domain ReturnedOrders
func ToDomainReturnedOrderSlice(ms []models.ReturnedOrder) []domain.ReturnedOrder {
	ds := make([]domain.ReturnedOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReturnedOrder(m)
	}
	return ds
}
