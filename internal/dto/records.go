package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to record a sale.
type CreateOrderRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gte=0"`
	Unit        string          `json:"unit" binding:"max=20"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Paid        decimal.Decimal `json:"paid" binding:"gte=0"`
}

// UpdateOrderRequest defines the data allowed for updating an order.
type UpdateOrderRequest struct {
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"omitempty,gte=0"`
	Unit        *string          `json:"unit" binding:"omitempty,max=20"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Paid        *decimal.Decimal `json:"paid" binding:"omitempty,gte=0"`
}

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"gte=0"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
type UpdatePaymentRequest struct {
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gte=0"`
}

// CreateReturnedOrderRequest defines the data needed to record a return.
type CreateReturnedOrderRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gte=0"`
	Unit        string          `json:"unit" binding:"max=20"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
}

// UpdateReturnedOrderRequest defines the data allowed for updating a return.
type UpdateReturnedOrderRequest struct {
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"omitempty,gte=0"`
	Unit        *string          `json:"unit" binding:"omitempty,max=20"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID     int64           `json:"orderID"`
	CustomerID  int64           `json:"customerID"`
	SequenceKey *int64          `json:"sequenceKey,omitempty"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
	Paid        decimal.Decimal `json:"paid"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	CustomerID  int64           `json:"customerID"`
	SequenceKey *int64          `json:"sequenceKey,omitempty"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ReturnedOrderResponse defines the data returned for a returned order.
type ReturnedOrderResponse struct {
	ReturnedOrderID int64           `json:"returnedOrderID"`
	CustomerID      int64           `json:"customerID"`
	SequenceKey     *int64          `json:"sequenceKey,omitempty"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	ReturnValue     decimal.Decimal `json:"returnValue"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		SequenceKey: o.SequenceKey,
		Date:        o.Date,
		Description: o.Description,
		Quantity:    o.Quantity.OrZero(),
		Unit:        o.Unit,
		Price:       o.Price.OrZero(),
		Value:       o.Value(),
		Paid:        o.Paid.OrZero(),
		CreatedAt:   o.CreatedAt,
		CreatedBy:   o.CreatedBy,
	}
}

// ToOrderResponses converts a slice of domain.Order to []OrderResponse.
func ToOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.ID,
		CustomerID:  p.CustomerID,
		SequenceKey: p.SequenceKey,
		Date:        p.Date,
		Description: p.Description,
		Amount:      p.Amount.OrZero(),
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// ToReturnedOrderResponse converts a domain.ReturnedOrder to ReturnedOrderResponse DTO
func ToReturnedOrderResponse(r *domain.ReturnedOrder) ReturnedOrderResponse {
	return ReturnedOrderResponse{
		ReturnedOrderID: r.ID,
		CustomerID:      r.CustomerID,
		SequenceKey:     r.SequenceKey,
		Date:            r.Date,
		Description:     r.Description,
		Quantity:        r.Quantity.OrZero(),
		Unit:            r.Unit,
		Price:           r.Price.OrZero(),
		ReturnValue:     r.ReturnValue(),
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
	}
}

// ToReturnedOrderResponses converts a slice of domain.ReturnedOrder to []ReturnedOrderResponse.
func ToReturnedOrderResponses(returns []domain.ReturnedOrder) []ReturnedOrderResponse {
	res := make([]ReturnedOrderResponse, len(returns))
	for i := range returns {
		res[i] = ToReturnedOrderResponse(&returns[i])
	}
	return res
}
