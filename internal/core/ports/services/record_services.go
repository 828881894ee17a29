package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// OrderSvcFacade manages sales orders. Every successful mutation signals a ledger change.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, customerID int64, req dto.CreateOrderRequest, userID string) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, req dto.UpdateOrderRequest, userID string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64, userID string) error
}

// PaymentSvcFacade manages payments. Every successful mutation signals a ledger change.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, customerID int64, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, customerID int64) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64, userID string) error
}

// ReturnedOrderSvcFacade manages returned orders. Every successful mutation signals a ledger change.
type ReturnedOrderSvcFacade interface {
	CreateReturnedOrder(ctx context.Context, customerID int64, req dto.CreateReturnedOrderRequest, userID string) (*domain.ReturnedOrder, error)
	GetReturnedOrderByID(ctx context.Context, returnedOrderID int64) (*domain.ReturnedOrder, error)
	ListReturnedOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.ReturnedOrder, error)
	UpdateReturnedOrder(ctx context.Context, returnedOrderID int64, req dto.UpdateReturnedOrderRequest, userID string) (*domain.ReturnedOrder, error)
	DeleteReturnedOrder(ctx context.Context, returnedOrderID int64, userID string) error
}
