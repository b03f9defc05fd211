package www

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

func (h *Handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Page":          "login",
		"Authenticated": h.isAuthenticated(r),
	}
	h.render(w, "login.html", data)
}

func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := h.engine.AppConfig()
	user := r.FormValue("username")
	pass := r.FormValue("password")

	if cfg.Auth.AdminUser == "" || user != cfg.Auth.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(cfg.Auth.AdminPasswordHash), []byte(pass)) != nil {
		h.engine.DB().AppendAudit("auth", user, "login_failed", "", user)
		data := map[string]any{
			"Page":  "login",
			"Error": "Invalid username or password",
		}
		w.WriteHeader(http.StatusUnauthorized)
		h.render(w, "login.html", data)
		return
	}

	sess, _ := h.sessions.Get(r, sessionName)
	sess.Values["user"] = user
	if err := sess.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.engine.DB().AppendAudit("auth", user, "login", "", user)
	http.Redirect(w, r, "/diagnostics", http.StatusSeeOther)
}

func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r, sessionName)
	delete(sess.Values, "user")
	sess.Options.MaxAge = -1
	sess.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
