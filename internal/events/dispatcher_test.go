package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, changed []string
	d.Subscribe(EventOrderCreated, func(_ context.Context, e Event) error {
		created = append(created, e.OrderID)
		return nil
	})
	d.Subscribe(EventOrderStatusChanged, func(_ context.Context, e Event) error {
		changed = append(changed, e.OrderID)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventOrderCreated, OrderID: "order-1"}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventOrderStatusChanged, OrderID: "order-2"}))

	assert.Equal(t, []string{"order-1"}, created)
	assert.Equal(t, []string{"order-2"}, changed)
}

func TestDispatcher_HandlerFailureDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventOrderCreated, OrderID: "order-1"}))
	assert.True(t, reached)
}
