package www

import (
	"encoding/json"
	"net/http"
	"strconv"

	"econdash/dataset"
)

func (h *Handlers) apiSummary(w http.ResponseWriter, r *http.Request) {
	t, err := h.engine.LoadTable()
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.jsonOK(w, h.engine.Summary(r.Context(), t))
}

func (h *Handlers) apiPreview(w http.ResponseWriter, r *http.Request) {
	t, err := h.engine.LoadTable()
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	limit := h.engine.AppConfig().Dataset.PreviewRows
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	h.jsonOK(w, dataset.Preview(t, limit))
}

func (h *Handlers) apiHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, map[string]any{
		"status":    "ok",
		"messaging": h.engine.MsgClient().IsConnected(),
		"redis":     h.engine.Snapshot().Enabled(),
		"cache":     h.engine.Loader().Stats(),
	})
}

func (h *Handlers) jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
