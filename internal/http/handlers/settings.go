package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"campaignd/internal/domain"
)

// AdminGetSettings returns the operator-tunable options.
// GET /v1/admin/settings
func (a *App) AdminGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.Settings.Get(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("load settings")
		a.fail(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "settings": s})
}

// AdminUpdateSettings replaces the settings row. PUT /v1/admin/settings
func (a *App) AdminUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var s domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.DefaultCurrency = strings.ToUpper(strings.TrimSpace(s.DefaultCurrency))
	if s.DefaultCurrency == "" {
		a.fail(w, http.StatusBadRequest, "default_currency is required")
		return
	}
	if err := a.Settings.Update(r.Context(), s); err != nil {
		a.Logger.Error().Err(err).Msg("update settings")
		a.fail(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	a.ok(w, http.StatusOK, "Settings saved", nil)
}
