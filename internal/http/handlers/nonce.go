package handlers

import (
	"net/http"

	"campaignd/internal/middleware"
)

// nonceActions is the closed set of actions tokens may be minted for.
var nonceActions = map[string]bool{
	ActionUpdateStatus: true,
	ActionExport:       true,
}

// Nonce mints an anti-forgery token bound to the requested action and the
// authenticated operator. GET /v1/admin/nonce?action=...
func (a *App) Nonce(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if !nonceActions[action] {
		a.fail(w, http.StatusBadRequest, "Unknown action")
		return
	}
	subject := middleware.SubjectFromContext(r.Context())
	token := middleware.CreateNonce(a.Cfg.AuthSecret, action, subject, a.now())
	a.json(w, http.StatusOK, map[string]any{"success": true, "nonce": token, "action": action})
}
