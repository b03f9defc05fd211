package www

import (
	"log"
	"net/http"

	"econdash/dataset"
	"econdash/view"
)

func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	cfg := h.engine.AppConfig()

	t, err := h.engine.LoadTable()
	if err != nil {
		// An unreadable file degrades to the onboarding branch rather
		// than an error page; the cause is logged and audited.
		log.Printf("home: load dataset: %v", err)
		t = &dataset.Table{}
	}

	sum := h.engine.Summary(r.Context(), t)
	hv := view.BuildHome(t, sum, cfg.Dataset.Path, cfg.Dataset.PreviewRows)

	data := map[string]any{
		"Page":          "home",
		"View":          hv,
		"Authenticated": h.isAuthenticated(r),
	}
	h.render(w, "home.html", data)
}
