package www

import (
	"context"
	"net/http"
	"time"
)

func (h *Handlers) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	auditLog, _ := h.engine.DB().ListAuditLog(50)
	loadEvents, _ := h.engine.DB().ListLoadEvents(20)

	redisOK := false
	if h.engine.Snapshot().Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		redisOK = h.engine.Snapshot().Ping(ctx) == nil
		cancel()
	}

	data := map[string]any{
		"Page":          "diagnostics",
		"AuditLog":      auditLog,
		"LoadEvents":    loadEvents,
		"CacheStats":    h.engine.Loader().Stats(),
		"DatasetPath":   h.engine.AppConfig().Dataset.Path,
		"RedisEnabled":  h.engine.Snapshot().Enabled(),
		"RedisOK":       redisOK,
		"MessagingOK":   h.engine.MsgClient().IsConnected(),
		"Backend":       h.engine.MsgClient().Backend(),
		"Authenticated": h.isAuthenticated(r),
	}
	h.render(w, "diagnostics.html", data)
}
