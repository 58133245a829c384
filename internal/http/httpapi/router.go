package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"campaignd/internal/http/handlers"
	"campaignd/internal/infra"
	"campaignd/internal/middleware"
)

// NewRouter assembles the public donation surface and the token-gated
// operator surface under /v1.
func NewRouter(app *handlers.App, cfg *infra.Config, country middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.ListCampaigns)
			r.Get("/{id}", app.GetCampaign)

			// Donor submissions carry the per-IP rate limit and country tagging.
			r.Group(func(r chi.Router) {
				r.Use(
					middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
					middleware.Country(country),
				)
				r.Post("/{id}/donations", app.SubmitDonation)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(
				middleware.Auth(cfg.AuthSecret),
				middleware.RequireAdmin,
			)

			r.Get("/dashboard", app.AdminDashboard)
			r.Get("/nonce", app.Nonce)
			r.Get("/export", app.AdminExportCSV)

			r.Route("/donations", func(r chi.Router) {
				r.Get("/", app.AdminListDonations)
				r.Get("/{id}", app.AdminGetDonation)
				r.Post("/{id}/status", app.AdminUpdateStatus)
			})

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", app.AdminCreateCampaign)
				r.Put("/{id}", app.AdminUpdateCampaign)
				r.Delete("/{id}", app.AdminDeleteCampaign)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", app.AdminGetSettings)
				r.Put("/", app.AdminUpdateSettings)
			})
		})
	})

	return r
}
