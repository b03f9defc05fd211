package engine

import "testing"

func TestSubscribeTypesFilters(t *testing.T) {
	bus := NewEventBus()

	var got []EventType
	bus.SubscribeTypes(func(evt Event) {
		got = append(got, evt.Type)
	}, EventCacheBusted)

	bus.Emit(Event{Type: EventDatasetLoaded})
	bus.Emit(Event{Type: EventCacheBusted})
	bus.Emit(Event{Type: EventDatasetRefreshed})

	if len(got) != 1 || got[0] != EventCacheBusted {
		t.Errorf("received %v, want [EventCacheBusted]", got)
	}
}

func TestSubscribeReceivesAll(t *testing.T) {
	bus := NewEventBus()

	count := 0
	bus.Subscribe(func(Event) { count++ })

	bus.Emit(Event{Type: EventDatasetLoaded})
	bus.Emit(Event{Type: EventMessagingConnected})

	if count != 2 {
		t.Errorf("received %d events, want 2", count)
	}
}
