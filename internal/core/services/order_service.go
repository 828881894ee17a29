package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/events"
)

type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewOrderService creates the sales order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, customerRepo portsrepo.CustomerReader, opts ...Option) portssvc.OrderSvcFacade {
	svc := &orderService{orderRepo: orderRepo, customerRepo: customerRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, customerID int64, req dto.CreateOrderRequest, userID string) (*domain.Order, error) {
	if err := requireActiveCustomer(ctx, s.customerRepo, customerID); err != nil {
		s.LogDebug(ctx, "Order rejected", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	order := domain.Order{
		CustomerID:  customerID,
		Date:        req.Date,
		Description: strings.TrimSpace(req.Description),
		Quantity:    domain.NewNumeric(req.Quantity),
		Unit:        strings.TrimSpace(req.Unit),
		Price:       domain.NewNumeric(req.Price),
		Paid:        domain.NewNumeric(req.Paid),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.orderRepo.SaveOrder(ctx, order)
	if err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: customerID, Record: events.RecordOrder, Op: events.OpCreated, RecordID: saved.ID})
	s.LogInfo(ctx, "Order created", slog.Int64("order_id", saved.ID), slog.Int64("customer_id", customerID))
	return saved, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.Int64("customer_id", customerID))
		return nil, err
	}
	return orders, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID int64, req dto.UpdateOrderRequest, userID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		order.Date = *req.Date
	}
	if req.Description != nil {
		order.Description = strings.TrimSpace(*req.Description)
	}
	if req.Quantity != nil {
		order.Quantity = domain.NewNumeric(*req.Quantity)
	}
	if req.Unit != nil {
		order.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Price != nil {
		order.Price = domain.NewNumeric(*req.Price)
	}
	if req.Paid != nil {
		order.Paid = domain.NewNumeric(*req.Paid)
	}
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.Int64("order_id", orderID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: order.CustomerID, Record: events.RecordOrder, Op: events.OpUpdated, RecordID: orderID})
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64, userID string) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		s.LogError(ctx, err, "Failed to delete order", slog.Int64("order_id", orderID))
		return err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: order.CustomerID, Record: events.RecordOrder, Op: events.OpDeleted, RecordID: orderID})
	s.LogInfo(ctx, "Order deleted", slog.Int64("order_id", orderID), slog.String("deleted_by", userID))
	return nil
}
