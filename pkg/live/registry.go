package live

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Handler receives dispatched events. Handlers run on the reader goroutine;
// dispatch of one event completes before the next inbound frame is decoded.
type Handler func(Event)

type registration struct {
	id string
	fn Handler
}

// Registry maps event categories to ordered handler lists. Registration order
// is invocation order. Safe for concurrent use, including (un)registration
// from inside a dispatched handler.
type Registry struct {
	mu       sync.RWMutex
	handlers map[EventType][]registration
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		handlers: make(map[EventType][]registration),
		logger:   logger,
	}
}

// On registers a handler for an event category and returns its handle.
// Use EventAll to receive every event.
func (r *Registry) On(t EventType, fn Handler) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.handlers[t] = append(r.handlers[t], registration{id: id, fn: fn})
	r.mu.Unlock()
	return id
}

// Off removes a previously registered handler. Returns false when the handle
// is not registered under the given category.
func (r *Registry) Off(t EventType, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	regs := r.handlers[t]
	for i, reg := range regs {
		if reg.id == id {
			r.handlers[t] = append(regs[:i:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch invokes the handlers for the event's category, then the EventAll
// handlers, in registration order. The handler set is snapshotted before
// invocation so concurrent (un)registration never mutates an in-flight
// dispatch. A panicking handler does not suppress later handlers.
func (r *Registry) Dispatch(ev Event) {
	t := ev.EventType()
	r.mu.RLock()
	snapshot := make([]registration, 0, len(r.handlers[t])+len(r.handlers[EventAll]))
	snapshot = append(snapshot, r.handlers[t]...)
	snapshot = append(snapshot, r.handlers[EventAll]...)
	r.mu.RUnlock()

	for _, reg := range snapshot {
		r.invoke(t, reg, ev)
	}
}

func (r *Registry) invoke(t EventType, reg registration, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("live_handler_panic",
				slog.String("event_type", string(t)),
				slog.String("handler_id", reg.id),
				slog.Any("panic", rec))
		}
	}()
	reg.fn(ev)
}
