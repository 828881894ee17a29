package repositories

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// OrderReader defines read operations for sales orders
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// ListOrdersByCustomer returns every order of a customer in sequence key order.
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// OrderWriter defines write operations for sales orders
type OrderWriter interface {
	// SaveOrder inserts an order, assigning its id and sequence key.
	SaveOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, customerID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// ReturnedOrderReader defines read operations for returned orders
type ReturnedOrderReader interface {
	FindReturnedOrderByID(ctx context.Context, returnedOrderID int64) (*domain.ReturnedOrder, error)
	ListReturnedOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.ReturnedOrder, error)
}

// ReturnedOrderWriter defines write operations for returned orders
type ReturnedOrderWriter interface {
	SaveReturnedOrder(ctx context.Context, returned domain.ReturnedOrder) (*domain.ReturnedOrder, error)
	UpdateReturnedOrder(ctx context.Context, returned domain.ReturnedOrder) error
	DeleteReturnedOrder(ctx context.Context, returnedOrderID int64) error
}

// ReturnedOrderRepositoryFacade combines all returned-order repository interfaces
type ReturnedOrderRepositoryFacade interface {
	ReturnedOrderReader
	ReturnedOrderWriter
}
