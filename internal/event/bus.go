package event

import (
	"fmt"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/Iron-Ham/timeline/internal/logging"
)

// Handler is a function that handles an event.
type Handler func(Event)

// Subscription identifies a registered handler. The zero value never
// identifies a live subscription.
type Subscription uint64

type listener struct {
	id      Subscription
	types   []string // empty means every type
	handler Handler
}

func (l listener) wants(eventType string) bool {
	return len(l.types) == 0 || slices.Contains(l.types, eventType)
}

// Bus is a synchronous pub-sub bus. Listeners are called in the order they
// subscribed, whether they asked for specific types or for everything.
type Bus struct {
	mu        sync.RWMutex
	listeners []listener
	last      Subscription
	logger    *logging.Logger
}

// NewBus creates a new event bus. Handler panics are reported to logger; a
// nil logger discards them.
func NewBus(logger *logging.Logger) *Bus {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Bus{logger: logger.WithComponent("event-bus")}
}

// Subscribe registers handler for the given event types, or for every type
// when none are given.
func (b *Bus) Subscribe(handler Handler, types ...string) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last++
	b.listeners = append(b.listeners, listener{
		id:      b.last,
		types:   slices.Clone(types),
		handler: handler,
	})
	return b.last
}

// SubscribeAll registers handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) Subscription {
	return b.Subscribe(handler)
}

// Unsubscribe removes a subscription. It reports whether id was live.
func (b *Bus) Unsubscribe(id Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.listeners, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	b.listeners = slices.Delete(b.listeners, i, i+1)
	return true
}

// Publish delivers e to every interested listener. Handlers run on the
// caller's goroutine after the lock is released, so they may subscribe or
// publish themselves. A panicking handler is logged and skipped.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	targets := make([]Handler, 0, len(b.listeners))
	for _, l := range b.listeners {
		if l.wants(e.EventType()) {
			targets = append(targets, l.handler)
		}
	}
	b.mu.RUnlock()

	for _, h := range targets {
		b.deliver(h, e)
	}
}

func (b *Bus) deliver(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event_type", e.EventType(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	h(e)
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
