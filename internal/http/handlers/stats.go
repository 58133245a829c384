package handlers

import (
	"net/http"

	"campaignd/internal/domain"
)

// AdminDashboard aggregates the operator landing view: global totals, the
// most recent submissions and a per-campaign overview.
// GET /v1/admin/dashboard
func (a *App) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Stats.DashboardSummary(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("dashboard summary")
		a.fail(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	recent, err := a.Submissions.ListWithCampaign(r.Context(), domain.ListFilter{Limit: 10}.Normalize())
	if err != nil {
		a.Logger.Error().Err(err).Msg("recent submissions")
		a.fail(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	recentViews := make([]submissionView, 0, len(recent))
	for _, row := range recent {
		recentViews = append(recentViews, newJoinedSubmissionView(row))
	}

	campaigns, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("campaign overview")
		a.fail(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if len(campaigns) > 5 {
		campaigns = campaigns[:5]
	}
	now := a.now()
	overview := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		stats, err := a.Submissions.CampaignStats(r.Context(), c.ID)
		if err != nil {
			a.Logger.Error().Err(err).Int64("campaign_id", c.ID).Msg("campaign stats")
			a.fail(w, http.StatusInternalServerError, "Failed to load dashboard")
			return
		}
		overview = append(overview, newCampaignView(c, stats, now))
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":           true,
		"summary":           summary,
		"recent_donations":  recentViews,
		"campaign_overview": overview,
	})
}
