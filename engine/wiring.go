package engine

import "fmt"

func (e *Engine) wireEventHandlers() {
	// Every actual storage read lands in the load-event log
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(DatasetLoadedEvent)
		e.logFn("engine: dataset %s %s (%d rows, %s)", ev.Path, ev.Outcome, ev.Rows, ev.Elapsed)
		if err := e.db.AppendLoadEvent(ev.Path, ev.Outcome, ev.Rows, ev.Elapsed); err != nil {
			e.logFn("engine: append load event: %v", err)
		}
	}, EventDatasetLoaded)

	// ETL refresh notifications: audit with the envelope id for tracing
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(DatasetRefreshedEvent)
		e.logFn("engine: refresh notification for %s from %s", ev.Path, ev.Source)
		e.db.AppendAudit("dataset", ev.Path, "refresh", fmt.Sprintf("envelope %s", ev.EnvelopeID), ev.Source)
	}, EventDatasetRefreshed)

	// Manual cache busts: audit with the acting user
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(CacheBustedEvent)
		e.logFn("engine: cache busted for %s by %s", ev.Path, ev.Actor)
		e.db.AppendAudit("cache", ev.Path, "bust", "", ev.Actor)
	}, EventCacheBusted)

	// Connection transitions are logged, not audited
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(ConnectionEvent)
		e.logFn("engine: %s", ev.Detail)
	}, EventMessagingConnected, EventMessagingDisconnected, EventRedisConnected, EventRedisDisconnected)
}
