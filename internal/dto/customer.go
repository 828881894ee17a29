package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LegacyAggregateRequest carries a customer's pre-itemised balance.
type LegacyAggregateRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"gte=0"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
	Paid     decimal.Decimal `json:"paid" binding:"gte=0"`
}

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name    string                  `json:"name" binding:"required,notblank,max=200"`
	Phone   string                  `json:"phone" binding:"max=50"`
	Address string                  `json:"address"`
	Notes   string                  `json:"notes"`
	Legacy  *LegacyAggregateRequest `json:"legacy"` // Optional
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name    *string                 `json:"name" binding:"omitempty,notblank,max=200"`
	Phone   *string                 `json:"phone" binding:"omitempty,max=50"`
	Address *string                 `json:"address"`
	Notes   *string                 `json:"notes"`
	Legacy  *LegacyAggregateRequest `json:"legacy"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit           int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken       *string `form:"nextToken"`
	IncludeInactive bool    `form:"includeInactive"`
}

// LegacyAggregateResponse mirrors domain.LegacyAggregate.
type LegacyAggregateResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Paid     decimal.Decimal `json:"paid"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    int64                   `json:"customerID"`
	Name          string                  `json:"name"`
	Phone         string                  `json:"phone"`
	Address       string                  `json:"address"`
	Notes         string                  `json:"notes"`
	IsActive      bool                    `json:"isActive"`
	Legacy        LegacyAggregateResponse `json:"legacy"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToLegacyAggregate converts the request body to its domain form.
func (r *LegacyAggregateRequest) ToLegacyAggregate() domain.LegacyAggregate {
	if r == nil {
		return domain.LegacyAggregate{}
	}
	return domain.LegacyAggregate{
		Quantity: domain.NewNumeric(r.Quantity),
		Price:    domain.NewNumeric(r.Price),
		Paid:     domain.NewNumeric(r.Paid),
	}
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		Notes:      c.Notes,
		IsActive:   c.IsActive,
		Legacy: LegacyAggregateResponse{
			Quantity: c.Legacy.Quantity.OrZero(),
			Price:    c.Legacy.Price.OrZero(),
			Paid:     c.Legacy.Paid.OrZero(),
		},
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to []CustomerResponse.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
