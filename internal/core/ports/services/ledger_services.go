package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// LedgerSvcFacade produces customer account statements.
type LedgerSvcFacade interface {
	// GetCustomerLedger loads a customer's records and computes the statement.
	// Sources that fail are replaced by empty lists and named in DegradedSources.
	GetCustomerLedger(ctx context.Context, customerID int64) (*domain.LedgerStatement, error)

	// ComputeLedger runs the engine over caller-supplied records without touching storage.
	ComputeLedger(ctx context.Context, req dto.ComputeLedgerRequest) domain.LedgerResult
}
