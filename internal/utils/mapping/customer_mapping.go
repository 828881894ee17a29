package mapping

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		Notes:          d.Notes,
		IsActive:       d.IsActive,
		LegacyQuantity: d.Legacy.Quantity.OrZero(),
		LegacyPrice:    d.Legacy.Price.OrZero(),
		LegacyPaid:     d.Legacy.Paid.OrZero(),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Phone:      m.Phone,
		Address:    m.Address,
		Notes:      m.Notes,
		IsActive:   m.IsActive,
		Legacy: domain.LegacyAggregate{
			Quantity: domain.NewNumeric(m.LegacyQuantity),
			Price:    domain.NewNumeric(m.LegacyPrice),
			Paid:     domain.NewNumeric(m.LegacyPaid),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
