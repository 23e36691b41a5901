package page

import "sync"

// EventType names a page lifecycle event.
type EventType string

const (
	EventLoad      EventType = "load"
	EventClick     EventType = "click"
	EventSubmit    EventType = "submit"
	EventScroll    EventType = "scroll"
	EventError     EventType = "error"
	EventRejection EventType = "rejection"
	EventUnload    EventType = "unload"
)

// Event is what handlers receive. Fields are populated per event type:
// clicks carry Target, scrolls carry Percent, errors carry Message and
// Source, submits carry Target.
type Event struct {
	Type    EventType
	URL     string
	Target  string
	Percent int
	Message string
	Source  string
	Line    int
}

// Handler reacts to one dispatched event.
type Handler func(Event)

// Bus fans events out to subscribed handlers. Handlers for the same event
// type run synchronously in the order they were registered.
type Bus struct {
	mu       sync.Mutex
	handlers map[EventType][]Handler
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// On registers a handler for one event type.
func (b *Bus) On(t EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Dispatch delivers the event to every handler registered for its type.
func (b *Bus) Dispatch(e Event) {
	b.mu.Lock()
	hs := make([]Handler, len(b.handlers[e.Type]))
	copy(hs, b.handlers[e.Type])
	b.mu.Unlock()

	for _, h := range hs {
		h(e)
	}
}
