//go:build unit

package events_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"wildhaven/internal/events"

	"github.com/stretchr/testify/assert"
)

func newTestBus() *events.Bus {
	return events.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus(t *testing.T) {
	t.Run("delivers to subscribers in registration order", func(t *testing.T) {
		bus := newTestBus()
		var order []string

		bus.Subscribe(func(events.Event) { order = append(order, "first") })
		bus.Subscribe(func(events.Event) { order = append(order, "second") })
		bus.Subscribe(func(events.Event) { order = append(order, "third") })

		bus.Publish(events.Event{Type: events.SessionExpired})

		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("unsubscribed handler receives nothing", func(t *testing.T) {
		bus := newTestBus()
		calls := 0

		unsubscribe := bus.Subscribe(func(events.Event) { calls++ })
		bus.Publish(events.Event{Type: events.LoggedOut})
		unsubscribe()
		bus.Publish(events.Event{Type: events.LoggedOut})

		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		bus := newTestBus()
		var survivor int

		unsubscribe := bus.Subscribe(func(events.Event) {})
		bus.Subscribe(func(events.Event) { survivor++ })

		unsubscribe()
		unsubscribe()
		unsubscribe()

		bus.Publish(events.Event{Type: events.SessionExpired})
		assert.Equal(t, 1, survivor)
	})

	t.Run("panicking handler does not block later handlers", func(t *testing.T) {
		bus := newTestBus()
		delivered := false

		bus.Subscribe(func(events.Event) { panic("handler exploded") })
		bus.Subscribe(func(events.Event) { delivered = true })

		assert.NotPanics(t, func() {
			bus.Publish(events.Event{Type: events.SessionExpired})
		})
		assert.True(t, delivered)
	})

	t.Run("handler carries the event type", func(t *testing.T) {
		bus := newTestBus()
		var got events.Type

		bus.Subscribe(func(e events.Event) { got = e.Type })
		bus.Publish(events.Event{Type: events.LoggedOut})

		assert.Equal(t, events.LoggedOut, got)
	})

	t.Run("subscribing while an emission is in flight does not deadlock", func(t *testing.T) {
		bus := newTestBus()
		var wg sync.WaitGroup

		bus.Subscribe(func(events.Event) {
			bus.Subscribe(func(events.Event) {})
		})

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bus.Publish(events.Event{Type: events.SessionExpired})
			}()
		}
		wg.Wait()
	})
}
