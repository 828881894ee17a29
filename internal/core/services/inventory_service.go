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

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates the stock list service.
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade, opts ...Option) portssvc.InventorySvcFacade {
	svc := &inventoryService{inventoryRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	now := time.Now()
	item := domain.InventoryItem{
		Name:     strings.TrimSpace(req.Name),
		SKU:      strings.TrimSpace(req.SKU),
		Unit:     strings.TrimSpace(req.Unit),
		Quantity: req.Quantity,
		Price:    req.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.inventoryRepo.SaveItem(ctx, item)
	if err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("sku", item.SKU))
		return nil, err
	}
	s.Publish(ctx, events.RecordChanged{Record: events.RecordInventoryItem, Op: events.OpCreated, RecordID: saved.ItemID})
	return saved, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindItemByID(ctx, itemID)
}

func (s *inventoryService) ListItems(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, *string, error) {
	var after *portsrepo.PageCursor
	if params.NextToken != nil && *params.NextToken != "" {
		name, id, err := pagination.DecodeKeyToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &portsrepo.PageCursor{Key: name, ID: id}
	}

	items, err := s.inventoryRepo.ListItems(ctx, params.Limit, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory")
		return nil, nil, err
	}

	var next *string
	if n := len(items); n > 0 {
		next = pagination.NextPageToken(n, params.Limit, items[n-1].Name, items[n-1].ItemID)
	}
	return items, next, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, itemID int64, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.SKU != nil {
		item.SKU = strings.TrimSpace(*req.SKU)
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = userID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update inventory item", slog.Int64("item_id", itemID))
		return nil, err
	}
	s.Publish(ctx, events.RecordChanged{Record: events.RecordInventoryItem, Op: events.OpUpdated, RecordID: itemID})
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID int64, userID string) error {
	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete inventory item", slog.Int64("item_id", itemID))
		return err
	}
	s.Publish(ctx, events.RecordChanged{Record: events.RecordInventoryItem, Op: events.OpDeleted, RecordID: itemID})
	s.LogInfo(ctx, "Inventory item deleted", slog.Int64("item_id", itemID), slog.String("deleted_by", userID))
	return nil
}
