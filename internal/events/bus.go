// Package events carries record-change notifications from the services that
// mutate customer records to whoever needs to recompute derived data.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RecordKind names the kind of record that changed.
type RecordKind string

const (
	RecordCustomer      RecordKind = "customer"
	RecordOrder         RecordKind = "order"
	RecordPayment       RecordKind = "payment"
	RecordReturnedOrder RecordKind = "returned_order"
	RecordInventoryItem RecordKind = "inventory_item"
)

// Op is the mutation that happened.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// RecordChanged is published after a record was persisted.
// CustomerID is zero for records that do not belong to a customer.
type RecordChanged struct {
	CustomerID int64
	Record     RecordKind
	Op         Op
	RecordID   int64
	At         time.Time
}

// Handler reacts to a change. It runs on the publisher's goroutine.
type Handler func(ctx context.Context, evt RecordChanged)

// Publisher is what mutating services depend on.
type Publisher interface {
	Publish(ctx context.Context, evt RecordChanged)
}

// Subscriber is what reacting components depend on.
type Subscriber interface {
	Subscribe(h Handler) func()
}

// Bus is a synchronous in-process publish/subscribe hub.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int
	logger   *slog.Logger
}

var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)

// NewBus creates an empty bus. A nil logger falls back to slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[int]Handler),
		logger:   logger,
	}
}

// Subscribe registers h and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish delivers evt to every subscriber in subscription order. A panicking
// handler is logged and does not stop delivery to the others.
func (b *Bus) Publish(ctx context.Context, evt RecordChanged) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(ctx, h, evt)
	}
}

func (b *Bus) deliver(ctx context.Context, h Handler, evt RecordChanged) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				slog.Any("panic", r),
				slog.String("record", string(evt.Record)),
				slog.String("op", string(evt.Op)),
				slog.Int64("customer_id", evt.CustomerID))
		}
	}()
	h(ctx, evt)
}
