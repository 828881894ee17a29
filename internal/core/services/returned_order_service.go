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

type returnedOrderService struct {
	BaseService
	returnRepo   portsrepo.ReturnedOrderRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewReturnedOrderService creates the returned order service.
func NewReturnedOrderService(returnRepo portsrepo.ReturnedOrderRepositoryFacade, customerRepo portsrepo.CustomerReader, opts ...Option) portssvc.ReturnedOrderSvcFacade {
	svc := &returnedOrderService{returnRepo: returnRepo, customerRepo: customerRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ReturnedOrderSvcFacade = (*returnedOrderService)(nil)

func (s *returnedOrderService) CreateReturnedOrder(ctx context.Context, customerID int64, req dto.CreateReturnedOrderRequest, userID string) (*domain.ReturnedOrder, error) {
	if err := requireActiveCustomer(ctx, s.customerRepo, customerID); err != nil {
		return nil, err
	}

	now := time.Now()
	returned := domain.ReturnedOrder{
		CustomerID:  customerID,
		Date:        req.Date,
		Description: strings.TrimSpace(req.Description),
		Quantity:    domain.NewNumeric(req.Quantity),
		Unit:        strings.TrimSpace(req.Unit),
		Price:       domain.NewNumeric(req.Price),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.returnRepo.SaveReturnedOrder(ctx, returned)
	if err != nil {
		s.LogError(ctx, err, "Failed to save returned order", slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: customerID, Record: events.RecordReturnedOrder, Op: events.OpCreated, RecordID: saved.ID})
	s.LogInfo(ctx, "Returned order recorded", slog.Int64("returned_order_id", saved.ID), slog.Int64("customer_id", customerID))
	return saved, nil
}

func (s *returnedOrderService) GetReturnedOrderByID(ctx context.Context, returnedOrderID int64) (*domain.ReturnedOrder, error) {
	return s.returnRepo.FindReturnedOrderByID(ctx, returnedOrderID)
}

func (s *returnedOrderService) ListReturnedOrdersByCustomer(ctx context.Context, customerID int64) ([]domain.ReturnedOrder, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.returnRepo.ListReturnedOrdersByCustomer(ctx, customerID)
}

func (s *returnedOrderService) UpdateReturnedOrder(ctx context.Context, returnedOrderID int64, req dto.UpdateReturnedOrderRequest, userID string) (*domain.ReturnedOrder, error) {
	returned, err := s.returnRepo.FindReturnedOrderByID(ctx, returnedOrderID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		returned.Date = *req.Date
	}
	if req.Description != nil {
		returned.Description = strings.TrimSpace(*req.Description)
	}
	if req.Quantity != nil {
		returned.Quantity = domain.NewNumeric(*req.Quantity)
	}
	if req.Unit != nil {
		returned.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Price != nil {
		returned.Price = domain.NewNumeric(*req.Price)
	}
	returned.LastUpdatedAt = time.Now()
	returned.LastUpdatedBy = userID

	if err := s.returnRepo.UpdateReturnedOrder(ctx, *returned); err != nil {
		s.LogError(ctx, err, "Failed to update returned order", slog.Int64("returned_order_id", returnedOrderID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: returned.CustomerID, Record: events.RecordReturnedOrder, Op: events.OpUpdated, RecordID: returnedOrderID})
	return returned, nil
}

func (s *returnedOrderService) DeleteReturnedOrder(ctx context.Context, returnedOrderID int64, userID string) error {
	returned, err := s.returnRepo.FindReturnedOrderByID(ctx, returnedOrderID)
	if err != nil {
		return err
	}
	if err := s.returnRepo.DeleteReturnedOrder(ctx, returnedOrderID); err != nil {
		s.LogError(ctx, err, "Failed to delete returned order", slog.Int64("returned_order_id", returnedOrderID))
		return err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: returned.CustomerID, Record: events.RecordReturnedOrder, Op: events.OpDeleted, RecordID: returnedOrderID})
	s.LogInfo(ctx, "Returned order deleted", slog.Int64("returned_order_id", returnedOrderID), slog.String("deleted_by", userID))
	return nil
}
