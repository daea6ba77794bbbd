// Package events provides the process-wide session event channel that decouples
// "a 401 occurred" from "the UI must react". The bus is an injectable object
// owned by the composition root, not a package-level singleton, so tests can
// run isolated buses.
package events

import (
	"log/slog"
	"sync"
)

type Type string

const (
	// SessionExpired is raised when the gateway detects an
	// authorization-expiry error.
	SessionExpired Type = "SessionExpired"
	// LoggedOut is raised after an explicit sign-out completes.
	LoggedOut Type = "LoggedOut"
)

type Event struct {
	Type Type
}

type Handler func(Event)

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus fans events out synchronously to all current subscribers in registration
// order. A subscriber added while an emission is in flight does not receive
// that event.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Unsubscribing is idempotent.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every subscriber registered at call time. A
// panicking handler is logged and must not block delivery to the others or
// propagate back to the emitter.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		b.deliver(s, e)
	}
}

func (b *Bus) deliver(s subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil && b.logger != nil {
			b.logger.Error("session event handler panicked",
				slog.String("event", string(e.Type)),
				slog.Any("panic", r),
			)
		}
	}()
	s.handler(e)
}
