package lists

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fedilists/list-manager/internal/config"
	"github.com/fedilists/list-manager/internal/sessions"
	"github.com/fedilists/list-manager/pkg/handlers"
	"github.com/fedilists/list-manager/pkg/routes"
)

// Handler serves the list management endpoints. Every endpoint requires a
// valid session cookie; requests without one receive 403 with a no_cookie
// status so the client can restart the login flow.
type Handler struct {
	system   System
	sessions sessions.System
	cookie   string
	logger   *slog.Logger
}

// NewHandler creates a list management handler.
func NewHandler(system System, sess sessions.System, cfg *config.SessionsConfig, logger *slog.Logger) *Handler {
	return &Handler{
		system:   system,
		sessions: sess,
		cookie:   cfg.CookieName,
		logger:   logger.With("handler", "lists"),
	}
}

// Routes returns the route group for list management endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Description: "List management",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/info", Handler: h.Info},
		},
		Children: []routes.Group{
			{
				Prefix:      "/lists",
				Description: "List membership and lifecycle",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.CreateList},
					{Method: "POST", Pattern: "/add", Handler: h.AddAccount},
					{Method: "POST", Pattern: "/remove", Handler: h.RemoveAccount},
					{Method: "DELETE", Pattern: "/{id}", Handler: h.DeleteList},
				},
			},
		},
	}
}

// Info handles GET /info
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	dir, err := h.system.Info(r.Context(), sess)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dir)
}

// AddAccount handles POST /lists/add?list_id=...&account_id=...
func (h *Handler) AddAccount(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	listID, accountID, ok := h.membershipParams(w, r)
	if !ok {
		return
	}

	if err := h.system.AddAccount(r.Context(), sess, listID, accountID); err != nil {
		h.fail(w, err)
		return
	}

	respondOK(w)
}

// RemoveAccount handles POST /lists/remove?list_id=...&account_id=...
func (h *Handler) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	listID, accountID, ok := h.membershipParams(w, r)
	if !ok {
		return
	}

	if err := h.system.RemoveAccount(r.Context(), sess, listID, accountID); err != nil {
		h.fail(w, err)
		return
	}

	respondOK(w)
}

// CreateList handles POST /lists?list_name=...
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	title := r.URL.Query().Get("list_name")
	if title == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("list_name is required"))
		return
	}

	created, err := h.system.CreateList(r.Context(), sess, title)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, created)
}

// DeleteList handles DELETE /lists/{id}
func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	listID := r.PathValue("id")
	if listID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("list id is required"))
		return
	}

	if err := h.system.DeleteList(r.Context(), sess, listID); err != nil {
		h.fail(w, err)
		return
	}

	respondOK(w)
}

// session resolves the request's session cookie, responding no_cookie when
// it is missing, unknown, or expired.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	sess, err := sessions.FromRequest(r.Context(), h.sessions, r, h.cookie)
	if err != nil {
		if errors.Is(err, sessions.ErrNoCookie) || errors.Is(err, sessions.ErrNotFound) {
			respondNoCookie(w)
			return nil, false
		}
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnauthorized) {
		// Token revoked upstream. The session is useless, make the
		// client log in again.
		respondNoCookie(w)
		return
	}
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}

func (h *Handler) membershipParams(w http.ResponseWriter, r *http.Request) (listID, accountID string, ok bool) {
	q := r.URL.Query()
	listID = q.Get("list_id")
	accountID = q.Get("account_id")
	if listID == "" || accountID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("list_id and account_id are required"))
		return "", "", false
	}
	return listID, accountID, true
}

func respondNoCookie(w http.ResponseWriter) {
	handlers.RespondJSON(w, http.StatusForbidden, map[string]string{"status": "no_cookie"})
}

func respondOK(w http.ResponseWriter) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
