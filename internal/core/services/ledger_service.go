package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/SscSPs/shop_management_app/internal/platform/cache"
	"github.com/SscSPs/shop_management_app/internal/platform/metrics"
	"github.com/SscSPs/shop_management_app/internal/platform/resilience"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
)

// Ledger source names, as reported in DegradedSources and metrics.
const (
	SourceOrders         = "orders"
	SourcePayments       = "payments"
	SourceReturnedOrders = "returned_orders"
)

const ledgerCacheName = "ledger"

// LedgerSources are the repositories a statement is assembled from.
type LedgerSources struct {
	Customers      portsrepo.CustomerReader
	Orders         portsrepo.OrderReader
	Payments       portsrepo.PaymentReader
	ReturnedOrders portsrepo.ReturnedOrderReader
}

type ledgerService struct {
	BaseService
	sources       LedgerSources
	cache         *cache.InMemory[domain.LedgerStatement]
	metrics       *metrics.Metrics
	sourceTimeout time.Duration
	breakers      map[string]*gobreaker.CircuitBreaker

	mu       sync.Mutex
	versions map[int64]uint64
	now      func() time.Time
}

// LedgerOption configures the ledger service.
type LedgerOption func(*ledgerService)

// WithLedgerCache memoises statements until the owning customer changes.
func WithLedgerCache(c *cache.InMemory[domain.LedgerStatement]) LedgerOption {
	return func(s *ledgerService) {
		s.cache = c
	}
}

// WithLedgerMetrics records computations, cache use and source failures in m.
func WithLedgerMetrics(m *metrics.Metrics) LedgerOption {
	return func(s *ledgerService) {
		s.metrics = m
	}
}

// WithSourceTimeout bounds each source fetch.
func WithSourceTimeout(d time.Duration) LedgerOption {
	return func(s *ledgerService) {
		s.sourceTimeout = d
	}
}

// WithBreakerSettings replaces the default per-source circuit breaker settings.
func WithBreakerSettings(bs resilience.BreakerSettings) LedgerOption {
	return func(s *ledgerService) {
		s.breakers = s.newBreakers(bs)
	}
}

// WithChangeSubscription invalidates cached statements whenever sub reports
// a change to one of the customer's records.
func WithChangeSubscription(sub events.Subscriber) LedgerOption {
	return func(s *ledgerService) {
		sub.Subscribe(s.onRecordChanged)
	}
}

// NewLedgerService creates the statement service.
func NewLedgerService(sources LedgerSources, opts ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		sources:  sources,
		versions: make(map[int64]uint64),
		now:      time.Now,
	}
	svc.breakers = svc.newBreakers(resilience.DefaultBreakerSettings())
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) newBreakers(bs resilience.BreakerSettings) map[string]*gobreaker.CircuitBreaker {
	onChange := func(name string, from, to gobreaker.State) {
		s.metrics.IncrBreakerTransition(name, to.String())
		slog.Default().Warn("Ledger source breaker changed state",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	}
	return map[string]*gobreaker.CircuitBreaker{
		SourceOrders:         resilience.NewCircuitBreaker(SourceOrders, bs, onChange),
		SourcePayments:       resilience.NewCircuitBreaker(SourcePayments, bs, onChange),
		SourceReturnedOrders: resilience.NewCircuitBreaker(SourceReturnedOrders, bs, onChange),
	}
}

func (s *ledgerService) GetCustomerLedger(ctx context.Context, customerID int64) (*domain.LedgerStatement, error) {
	start := s.now()

	// The version is taken before any read so a change published mid-fetch
	// leaves this result under an outdated key.
	version := s.version(customerID)

	customer, err := s.sources.Customers.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := ledgerCacheKey(customerID, version)
	if s.cache != nil {
		if st, ok := s.cache.Get(key); ok {
			s.metrics.IncrCacheHit(ledgerCacheName)
			st.FromCache = true
			return &st, nil
		}
		s.metrics.IncrCacheMiss(ledgerCacheName)
	}

	var (
		orders   []domain.Order
		payments []domain.Payment
		returns  []domain.ReturnedOrder
		degraded []string
		mu       sync.Mutex
	)
	degrade := func(source string, err error) {
		s.LogError(ctx, err, "Ledger source unavailable, using empty list",
			slog.String("source", source),
			slog.Int64("customer_id", customerID),
			slog.Bool("breaker_open", resilience.IsOpen(err)))
		s.metrics.IncrSourceError(source)
		mu.Lock()
		degraded = append(degraded, source)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := fetchSource(gctx, s, SourceOrders, func(ctx context.Context) ([]domain.Order, error) {
			return s.sources.Orders.ListOrdersByCustomer(ctx, customerID)
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			degrade(SourceOrders, err)
		}
		orders = res
		return nil
	})
	g.Go(func() error {
		res, err := fetchSource(gctx, s, SourcePayments, func(ctx context.Context) ([]domain.Payment, error) {
			return s.sources.Payments.ListPaymentsByCustomer(ctx, customerID)
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			degrade(SourcePayments, err)
		}
		payments = res
		return nil
	})
	g.Go(func() error {
		res, err := fetchSource(gctx, s, SourceReturnedOrders, func(ctx context.Context) ([]domain.ReturnedOrder, error) {
			return s.sources.ReturnedOrders.ListReturnedOrdersByCustomer(ctx, customerID)
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			degrade(SourceReturnedOrders, err)
		}
		returns = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading ledger of customer %d: %w", customerID, err)
	}
	slices.Sort(degraded)

	result := ledger.Compute(*customer, orders, payments, returns)
	statement := domain.LedgerStatement{
		LedgerResult:    result,
		DegradedSources: degraded,
		ComputedAt:      s.now(),
	}

	s.metrics.IncrLedgerComputed(string(result.Status))
	s.metrics.RecordLedgerDuration(s.now().Sub(start))
	s.LogDebug(ctx, "Ledger computed",
		slog.Int64("customer_id", customerID),
		slog.Int("transactions", len(result.Transactions)),
		slog.String("status", string(result.Status)))

	// A statement built from partial data, or one that raced a mutation, is not kept.
	if s.cache != nil && len(degraded) == 0 && s.version(customerID) == version {
		s.cache.Set(key, statement)
	}
	return &statement, nil
}

func (s *ledgerService) ComputeLedger(ctx context.Context, req dto.ComputeLedgerRequest) domain.LedgerResult {
	result := ledger.Compute(req.Customer.ToCustomer(), req.Orders, req.Payments, req.ReturnedOrders)
	s.LogDebug(ctx, "Ad hoc ledger computed",
		slog.Int("transactions", len(result.Transactions)),
		slog.String("status", string(result.Status)))
	return result
}

func (s *ledgerService) onRecordChanged(_ context.Context, evt events.RecordChanged) {
	if evt.CustomerID == 0 {
		return
	}
	s.mu.Lock()
	old := s.versions[evt.CustomerID]
	s.versions[evt.CustomerID] = old + 1
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Delete(ledgerCacheKey(evt.CustomerID, old))
	}
}

func (s *ledgerService) version(customerID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[customerID]
}

func ledgerCacheKey(customerID int64, version uint64) string {
	return fmt.Sprintf("ledger:%d:%d", customerID, version)
}

// fetchSource loads one ledger source through its breaker. A failed source yields an empty list.
func fetchSource[T any](ctx context.Context, s *ledgerService, name string, fn func(ctx context.Context) ([]T, error)) ([]T, error) {
	res, err := resilience.Call(ctx, s.breakers[name], s.sourceTimeout, fn)
	if err != nil {
		return []T{}, err
	}
	return res, nil
}
