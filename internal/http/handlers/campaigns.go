package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
)

// ListCampaigns returns every campaign with stats, progress and deadline
// state. GET /v1/campaigns
func (a *App) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns")
		a.fail(w, http.StatusInternalServerError, "Failed to load campaigns")
		return
	}
	now := a.now()
	views := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		stats, err := a.Submissions.CampaignStats(r.Context(), c.ID)
		if err != nil {
			a.Logger.Error().Err(err).Int64("campaign_id", c.ID).Msg("campaign stats")
			a.fail(w, http.StatusInternalServerError, "Failed to load campaigns")
			return
		}
		views = append(views, newCampaignView(c, stats, now))
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "campaigns": views})
}

// GetCampaign returns one campaign with stats. GET /v1/campaigns/{id}
func (a *App) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.fail(w, http.StatusNotFound, msgCampaignNotFound)
		return
	}
	c, err := a.Campaigns.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, msgCampaignNotFound)
			return
		}
		a.Logger.Error().Err(err).Int64("campaign_id", id).Msg("load campaign")
		a.fail(w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}
	stats, err := a.Submissions.CampaignStats(r.Context(), id)
	if err != nil {
		a.Logger.Error().Err(err).Int64("campaign_id", id).Msg("campaign stats")
		a.fail(w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "campaign": newCampaignView(*c, stats, a.now())})
}

// parseCampaignInput validates operator-supplied campaign fields.
func (a *App) parseCampaignInput(in domain.CampaignInput) (*domain.Campaign, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	target, err := decimal.NewFromString(strings.TrimSpace(in.Target))
	if err != nil || target.IsNegative() {
		return nil, errors.New("target must be a non-negative amount")
	}
	deadline, err := time.Parse("2006-01-02", in.Deadline)
	if err != nil {
		return nil, errors.New("deadline must be formatted YYYY-MM-DD")
	}
	status := domain.CampaignStatus(in.Status)
	if in.Status == "" {
		status = domain.CampaignActive
	}
	if !status.Valid() {
		return nil, errors.New("invalid campaign status")
	}
	cur := strings.ToUpper(strings.TrimSpace(in.Currency))
	if cur == "" {
		cur = a.Cfg.DefaultCurrency
	}
	return &domain.Campaign{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Target:      target,
		Currency:    cur,
		Deadline:    deadline,
		Status:      status,
	}, nil
}

// AdminCreateCampaign creates a campaign. POST /v1/admin/campaigns
func (a *App) AdminCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c, err := a.parseCampaignInput(in)
	if err != nil {
		a.fail(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := a.Campaigns.Create(r.Context(), c)
	if err != nil {
		a.Logger.Error().Err(err).Msg("create campaign")
		a.fail(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}
	a.ok(w, http.StatusCreated, "Campaign created", map[string]any{"campaign_id": id})
}

// AdminUpdateCampaign replaces a campaign's fields. PUT /v1/admin/campaigns/{id}
func (a *App) AdminUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.fail(w, http.StatusNotFound, msgCampaignNotFound)
		return
	}
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c, err := a.parseCampaignInput(in)
	if err != nil {
		a.fail(w, http.StatusBadRequest, err.Error())
		return
	}
	c.ID = id
	if err := a.Campaigns.Update(r.Context(), c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, msgCampaignNotFound)
			return
		}
		a.Logger.Error().Err(err).Int64("campaign_id", id).Msg("update campaign")
		a.fail(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}
	a.ok(w, http.StatusOK, "Campaign updated", nil)
}

// AdminDeleteCampaign removes a campaign. Submissions survive and show the
// deleted-campaign placeholder in listings. DELETE /v1/admin/campaigns/{id}
func (a *App) AdminDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.fail(w, http.StatusNotFound, msgCampaignNotFound)
		return
	}
	if err := a.Campaigns.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, msgCampaignNotFound)
			return
		}
		a.Logger.Error().Err(err).Int64("campaign_id", id).Msg("delete campaign")
		a.fail(w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	a.ok(w, http.StatusOK, "Campaign deleted", nil)
}
