package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/SscSPs/shop_management_app/internal/utils/pagination"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a customer service backed by repo.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, opts ...Option) portssvc.CustomerSvcFacade {
	svc := &customerService{customerRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Address:  req.Address,
		Notes:    req.Notes,
		IsActive: true,
		Legacy:   req.Legacy.ToLegacyAggregate(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", customer.Name))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{
		CustomerID: saved.CustomerID,
		Record:     events.RecordCustomer,
		Op:         events.OpCreated,
		RecordID:   saved.CustomerID,
	})
	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", saved.CustomerID))
	return saved, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogDebug(ctx, "Customer lookup failed", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, *string, error) {
	var after *portsrepo.PageCursor
	if params.NextToken != nil && *params.NextToken != "" {
		name, id, err := pagination.DecodeKeyToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &portsrepo.PageCursor{Key: name, ID: id}
	}

	customers, err := s.customerRepo.ListCustomers(ctx, params.Limit, after, params.IncludeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, nil, err
	}

	var next *string
	if n := len(customers); n > 0 {
		last := customers[n-1]
		next = pagination.NextPageToken(n, params.Limit, last.Name, last.CustomerID)
	}
	return customers, next, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.Legacy != nil {
		customer.Legacy = req.Legacy.ToLegacyAggregate()
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{
		CustomerID: customerID,
		Record:     events.RecordCustomer,
		Op:         events.OpUpdated,
		RecordID:   customerID,
	})
	return customer, nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, customerID int64, userID string) error {
	if err := s.customerRepo.DeactivateCustomer(ctx, customerID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate customer", slog.Int64("customer_id", customerID))
		return err
	}

	s.Publish(ctx, events.RecordChanged{
		CustomerID: customerID,
		Record:     events.RecordCustomer,
		Op:         events.OpDeleted,
		RecordID:   customerID,
	})
	s.LogInfo(ctx, "Customer deactivated", slog.Int64("customer_id", customerID))
	return nil
}

// requireActiveCustomer fails with a not-found or validation error unless
// records may be attached to the customer.
func requireActiveCustomer(ctx context.Context, repo portsrepo.CustomerReader, customerID int64) error {
	customer, err := repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !customer.IsActive {
		return fmt.Errorf("%w: customer %d is inactive", apperrors.ErrValidation, customerID)
	}
	return nil
}
