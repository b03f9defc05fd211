package engine

import (
	"context"
	"log"
	"time"

	"econdash/config"
	"econdash/dataset"
	"econdash/messaging"
	"econdash/snapshot"
	"econdash/store"
)

type LogFunc func(format string, args ...any)

type Config struct {
	AppConfig  *config.Config
	ConfigPath string
	Loader     *dataset.Loader
	DB         *store.DB
	Snapshot   *snapshot.Manager
	MsgClient  *messaging.Client
	LogFunc    LogFunc
}

type Engine struct {
	cfg          *config.Config
	configPath   string
	loader       *dataset.Loader
	db           *store.DB
	snapshot     *snapshot.Manager
	msgClient    *messaging.Client
	Events       *EventBus
	logFn        LogFunc
	stopChan     chan struct{}
	msgConnected bool
	redisUp      bool
}

func New(c Config) *Engine {
	logFn := c.LogFunc
	if logFn == nil {
		logFn = log.Printf
	}
	return &Engine{
		cfg:        c.AppConfig,
		configPath: c.ConfigPath,
		loader:     c.Loader,
		db:         c.DB,
		snapshot:   c.Snapshot,
		msgClient:  c.MsgClient,
		Events:     NewEventBus(),
		logFn:      logFn,
		stopChan:   make(chan struct{}),
	}
}

func (e *Engine) Start() {
	e.loader.SetNotifier(&loadEmitter{bus: e.Events})
	e.wireEventHandlers()
	e.checkConnectionStatus()
	go e.connectionHealthLoop()
	e.logFn("engine: started")
}

func (e *Engine) Stop() {
	select {
	case e.stopChan <- struct{}{}:
	default:
	}
	e.logFn("engine: stopped")
}

// Accessors
func (e *Engine) AppConfig() *config.Config    { return e.cfg }
func (e *Engine) ConfigPath() string           { return e.configPath }
func (e *Engine) Loader() *dataset.Loader      { return e.loader }
func (e *Engine) DB() *store.DB                { return e.db }
func (e *Engine) Snapshot() *snapshot.Manager  { return e.snapshot }
func (e *Engine) MsgClient() *messaging.Client { return e.msgClient }

// LoadTable returns the current dataset table via the load cache.
func (e *Engine) LoadTable() (*dataset.Table, error) {
	return e.loader.Load(e.cfg.Dataset.Path)
}

// Summary returns the dataset summary, preferring the redis snapshot
// cache and falling back to a local recompute.
func (e *Engine) Summary(ctx context.Context, t *dataset.Table) dataset.Summary {
	return e.snapshot.Summary(ctx, e.cfg.Dataset.Path, t)
}

// BustCache invalidates the load cache and the snapshot cache for path.
func (e *Engine) BustCache(path, actor string) {
	e.loader.Invalidate(path)
	e.snapshot.Invalidate(context.Background(), path)
	e.Events.Emit(Event{Type: EventCacheBusted, Payload: CacheBustedEvent{Path: path, Actor: actor}})
}

// HandleRefresh implements messaging.RefreshHandler: the ETL pipeline
// announced a rewritten dataset file, so drop the cached copies.
func (e *Engine) HandleRefresh(env *messaging.Envelope, req messaging.Refresh) {
	path := req.Path
	if path == "" {
		path = e.cfg.Dataset.Path
	}
	e.loader.Invalidate(path)
	e.snapshot.Invalidate(context.Background(), path)
	e.Events.Emit(Event{Type: EventDatasetRefreshed, Payload: DatasetRefreshedEvent{
		Path:       path,
		EnvelopeID: env.ID,
		Source:     env.ClientID,
	}})
}

func (e *Engine) checkConnectionStatus() {
	if e.msgClient.IsConnected() {
		if !e.msgConnected {
			e.msgConnected = true
			e.Events.Emit(Event{Type: EventMessagingConnected, Payload: ConnectionEvent{Detail: "messaging connected"}})
		}
	} else {
		if e.msgConnected {
			e.msgConnected = false
			e.Events.Emit(Event{Type: EventMessagingDisconnected, Payload: ConnectionEvent{Detail: "messaging disconnected"}})
		}
	}

	if e.snapshot.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := e.snapshot.Ping(ctx)
		cancel()
		if err == nil {
			if !e.redisUp {
				e.redisUp = true
				e.Events.Emit(Event{Type: EventRedisConnected, Payload: ConnectionEvent{Detail: "redis connected"}})
			}
		} else {
			if e.redisUp {
				e.redisUp = false
				e.Events.Emit(Event{Type: EventRedisDisconnected, Payload: ConnectionEvent{Detail: err.Error()}})
			}
		}
	}
}

func (e *Engine) connectionHealthLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-e.stopChan:
			return
		case <-ticker.C:
			e.checkConnectionStatus()
		}
	}
}

// loadEmitter bridges loader storage reads to the EventBus.
type loadEmitter struct {
	bus *EventBus
}

func (le *loadEmitter) DatasetLoaded(path, outcome string, rows int, elapsed time.Duration) {
	le.bus.Emit(Event{Type: EventDatasetLoaded, Payload: DatasetLoadedEvent{
		Path:    path,
		Outcome: outcome,
		Rows:    rows,
		Elapsed: elapsed,
	}})
}
