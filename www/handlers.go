package www

import (
	"net/http"

	"github.com/gorilla/sessions"

	"econdash/engine"
)

const sessionName = "econdash"

type Handlers struct {
	engine   *engine.Engine
	sessions *sessions.CookieStore
}

func NewHandlers(eng *engine.Engine) *Handlers {
	store := sessions.NewCookieStore([]byte(eng.AppConfig().Web.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Handlers{engine: eng, sessions: store}
}

func (h *Handlers) isAuthenticated(r *http.Request) bool {
	return h.getUsername(r) != ""
}

func (h *Handlers) getUsername(r *http.Request) string {
	sess, err := h.sessions.Get(r, sessionName)
	if err != nil {
		return ""
	}
	user, _ := sess.Values["user"].(string)
	return user
}

// requireAuth gates admin actions behind the session login.
func (h *Handlers) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.isAuthenticated(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
