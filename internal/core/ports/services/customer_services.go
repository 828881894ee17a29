package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by id.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers returns one page of customers and the token of the next page, if any.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, *string, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// DeactivateCustomer hides a customer from default listings. Its records are kept.
	DeactivateCustomer(ctx context.Context, customerID int64, userID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
