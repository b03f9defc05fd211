package engine

import "sync"

type EventType int

type Event struct {
	Type    EventType
	Payload any
}

// EventBus fans events out synchronously to subscribers.
type EventBus struct {
	mu   sync.RWMutex
	subs []subscription
}

type subscription struct {
	fn    func(Event)
	types map[EventType]bool
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers fn for every event.
func (b *EventBus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	b.subs = append(b.subs, subscription{fn: fn})
	b.mu.Unlock()
}

// SubscribeTypes registers fn for the given event types only.
func (b *EventBus) SubscribeTypes(fn func(Event), types ...EventType) {
	set := make(map[EventType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	b.mu.Lock()
	b.subs = append(b.subs, subscription{fn: fn, types: set})
	b.mu.Unlock()
}

func (b *EventBus) Emit(evt Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()
	for _, s := range subs {
		if s.types == nil || s.types[evt.Type] {
			s.fn(evt)
		}
	}
}
