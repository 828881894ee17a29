package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/platform/resilience"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSource = errors.New("source down")

func TestCall_ReturnsValue(t *testing.T) {
	cb := resilience.NewCircuitBreaker("orders", resilience.DefaultBreakerSettings(), nil)

	got, err := resilience.Call(context.Background(), cb, time.Second, func(context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestCall_TripsAfterRepeatedFailures(t *testing.T) {
	var transitions []gobreaker.State
	cb := resilience.NewCircuitBreaker("payments", resilience.DefaultBreakerSettings(), func(_ string, _, to gobreaker.State) {
		transitions = append(transitions, to)
	})
	failing := func(context.Context) (int, error) { return 0, errSource }

	for i := 0; i < 5; i++ {
		_, err := resilience.Call(context.Background(), cb, 0, failing)
		assert.ErrorIs(t, err, errSource)
	}

	_, err := resilience.Call(context.Background(), cb, 0, func(context.Context) (int, error) { return 1, nil })
	assert.True(t, resilience.IsOpen(err))
	assert.Equal(t, []gobreaker.State{gobreaker.StateOpen}, transitions)
}

func TestCall_CancellationDoesNotTrip(t *testing.T) {
	cb := resilience.NewCircuitBreaker("returns", resilience.DefaultBreakerSettings(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 10; i++ {
		_, err := resilience.Call(ctx, cb, 0, func(ctx context.Context) (int, error) { return 0, ctx.Err() })
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCall_AppliesTimeout(t *testing.T) {
	cb := resilience.NewCircuitBreaker("slow", resilience.DefaultBreakerSettings(), nil)

	_, err := resilience.Call(context.Background(), cb, 10*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
