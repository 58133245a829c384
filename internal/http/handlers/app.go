package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/mailer"
)

// App is the handler container. Every collaborator is injected at
// construction; handlers hold no ambient state.
type App struct {
	Submissions domain.SubmissionRepository
	Campaigns   domain.CampaignRepository
	Settings    domain.SettingsRepository
	Stats       domain.StatsRepository
	Mail        mailer.Mailer
	Logger      zerolog.Logger
	Cfg         *infra.Config

	// Clock is swappable in tests; nil means time.Now.
	Clock func() time.Time
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger zerolog.Logger,
	submissions domain.SubmissionRepository, campaigns domain.CampaignRepository,
	settings domain.SettingsRepository, stats domain.StatsRepository, mail mailer.Mailer) *App {
	return &App{
		Submissions: submissions,
		Campaigns:   campaigns,
		Settings:    settings,
		Stats:       stats,
		Mail:        mail,
		Logger:      logger,
		Cfg:         cfg,
	}
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the uniform failure envelope. Persistence failures use generic
// wording; validation failures carry the human-readable reason.
func (a *App) fail(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "message": message})
}

func (a *App) ok(w http.ResponseWriter, code int, message string, extra map[string]any) {
	body := map[string]any{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	a.json(w, code, body)
}
