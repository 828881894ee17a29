package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/SscSPs/shop_management_app/internal/platform/cache"
	"github.com/SscSPs/shop_management_app/internal/platform/config"
	"github.com/SscSPs/shop_management_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The returned function releases background resources and should be called on shutdown.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, bus *events.Bus, m *metrics.Metrics) (*portssvc.ServiceContainer, func()) {
	// Count every mutation seen on the bus
	unsubscribe := bus.Subscribe(func(_ context.Context, evt events.RecordChanged) {
		m.IncrRecordChange(string(evt.Record), string(evt.Op))
	})

	ledgerCache := cache.New[domain.LedgerStatement](cfg.LedgerCacheTTL)

	container := &portssvc.ServiceContainer{
		Customer:      NewCustomerService(repos.CustomerRepo, WithPublisher(bus)),
		Order:         NewOrderService(repos.OrderRepo, repos.CustomerRepo, WithPublisher(bus)),
		Payment:       NewPaymentService(repos.PaymentRepo, repos.CustomerRepo, WithPublisher(bus)),
		ReturnedOrder: NewReturnedOrderService(repos.ReturnedOrderRepo, repos.CustomerRepo, WithPublisher(bus)),
		Inventory:     NewInventoryService(repos.InventoryRepo, WithPublisher(bus)),
		Ledger: NewLedgerService(
			LedgerSources{
				Customers:      repos.CustomerRepo,
				Orders:         repos.OrderRepo,
				Payments:       repos.PaymentRepo,
				ReturnedOrders: repos.ReturnedOrderRepo,
			},
			WithLedgerCache(ledgerCache),
			WithLedgerMetrics(m),
			WithSourceTimeout(cfg.LedgerSourceTimeout),
			WithChangeSubscription(bus),
		),
		User:  NewUserService(repos.UserRepo),
		Token: NewTokenService(cfg),
	}

	return container, func() {
		unsubscribe()
		ledgerCache.Close()
	}
}
