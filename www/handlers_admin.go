package www

import "net/http"

// handleCacheBust drops the cached dataset so the next render re-reads
// storage. Useful after re-running the ETL script by hand.
func (h *Handlers) handleCacheBust(w http.ResponseWriter, r *http.Request) {
	path := r.FormValue("path")
	if path == "" {
		path = h.engine.AppConfig().Dataset.Path
	}
	actor := h.getUsername(r)
	if actor == "" {
		actor = "admin"
	}

	h.engine.BustCache(path, actor)

	http.Redirect(w, r, "/diagnostics", http.StatusSeeOther)
}
