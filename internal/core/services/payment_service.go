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

type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, customerRepo portsrepo.CustomerReader, opts ...Option) portssvc.PaymentSvcFacade {
	svc := &paymentService{paymentRepo: paymentRepo, customerRepo: customerRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, customerID int64, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	if err := requireActiveCustomer(ctx, s.customerRepo, customerID); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		CustomerID:  customerID,
		Date:        req.Date,
		Description: strings.TrimSpace(req.Description),
		Amount:      domain.NewNumeric(req.Amount),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: customerID, Record: events.RecordPayment, Op: events.OpCreated, RecordID: saved.ID})
	s.LogInfo(ctx, "Payment recorded", slog.Int64("payment_id", saved.ID), slog.Int64("customer_id", customerID))
	return saved, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPaymentsByCustomer(ctx context.Context, customerID int64) ([]domain.Payment, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByCustomer(ctx, customerID)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		payment.Date = *req.Date
	}
	if req.Description != nil {
		payment.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		payment.Amount = domain.NewNumeric(*req.Amount)
	}
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = userID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.Int64("payment_id", paymentID))
		return nil, err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: payment.CustomerID, Record: events.RecordPayment, Op: events.OpUpdated, RecordID: paymentID})
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64, userID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.Int64("payment_id", paymentID))
		return err
	}

	s.Publish(ctx, events.RecordChanged{CustomerID: payment.CustomerID, Record: events.RecordPayment, Op: events.OpDeleted, RecordID: paymentID})
	s.LogInfo(ctx, "Payment deleted", slog.Int64("payment_id", paymentID), slog.String("deleted_by", userID))
	return nil
}
