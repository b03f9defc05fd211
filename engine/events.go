package engine

import "time"

const (
	EventDatasetLoaded EventType = iota + 1
	EventDatasetRefreshed
	EventCacheBusted
	EventMessagingConnected
	EventMessagingDisconnected
	EventRedisConnected
	EventRedisDisconnected
)

// --- Event payloads ---

type DatasetLoadedEvent struct {
	Path    string
	Outcome string // "loaded", "empty", "missing", "error"
	Rows    int
	Elapsed time.Duration
}

type DatasetRefreshedEvent struct {
	Path       string
	EnvelopeID string
	Source     string
}

type CacheBustedEvent struct {
	Path  string
	Actor string
}

type ConnectionEvent struct {
	Detail string
}
