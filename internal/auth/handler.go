package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/internal/sessions"
	"github.com/fedilists/list-manager/pkg/handlers"
	"github.com/fedilists/list-manager/pkg/routes"
)

// Handler serves the login flow endpoints.
type Handler struct {
	system   System
	sessions sessions.System
	cfg      *config.SessionsConfig
	logger   *slog.Logger
}

// NewHandler creates a login flow handler.
func NewHandler(system System, sess sessions.System, cfg *config.SessionsConfig, logger *slog.Logger) *Handler {
	return &Handler{
		system:   system,
		sessions: sess,
		cfg:      cfg,
		logger:   logger.With("handler", "auth"),
	}
}

// Routes returns the route group for the login flow endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Description: "Login flow",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Begin},
			{Method: "GET", Pattern: "/callback", Handler: h.Callback},
		},
	}
}

// Begin handles GET /auth. Clients holding a live session get status OK;
// everyone else gets the instance authorization URL to redirect to.
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	sess, err := sessions.FromRequest(r.Context(), h.sessions, r, h.cfg.CookieName)
	if err != nil && !errors.Is(err, sessions.ErrNoCookie) && !errors.Is(err, sessions.ErrNotFound) {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	status := h.system.Begin(r.Context(), sess)
	if status.Authorized {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"url": status.URL})
}

// Callback handles GET /auth/callback?code=... It exchanges the code,
// stores the session, and sets the session cookie.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("code is required"))
		return
	}

	sess, err := h.system.Callback(r.Context(), code)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    sess.Key,
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   int(h.cfg.TTLDuration().Seconds()),
		Secure:   h.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
