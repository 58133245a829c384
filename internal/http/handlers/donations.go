package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaignd/internal/currency"
	"campaignd/internal/domain"
	"campaignd/internal/mailer"
	"campaignd/internal/middleware"
)

const (
	msgCampaignNotFound = "Campaign not found"
	msgCampaignClosed   = "This campaign is no longer accepting donations."
	msgDonationFailed   = "An error occurred while processing your donation. Please try again."
	msgDonationThanks   = "Thank you for your donation! Your submission has been recorded."
)

// SubmitDonation records one donor submission against an open campaign.
// POST /v1/campaigns/{id}/donations
func (a *App) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || campaignID <= 0 {
		a.fail(w, http.StatusNotFound, msgCampaignNotFound)
		return
	}

	campaign, err := a.Campaigns.Get(r.Context(), campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, msgCampaignNotFound)
			return
		}
		a.Logger.Error().Err(err).Int64("campaign_id", campaignID).Msg("load campaign")
		a.fail(w, http.StatusInternalServerError, msgDonationFailed)
		return
	}
	if !campaign.IsAcceptingDonations(a.now()) {
		a.fail(w, http.StatusUnprocessableEntity, msgCampaignClosed)
		return
	}

	var in domain.SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in.CampaignID = campaignID

	draft, err := domain.ValidateSubmission(in)
	if err != nil {
		a.fail(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	draft.DonorCountry = middleware.CountryFromContext(r.Context())

	id, err := a.Submissions.Insert(r.Context(), draft)
	if err != nil {
		a.Logger.Error().Err(err).Int64("campaign_id", campaignID).Msg("insert submission")
		a.fail(w, http.StatusInternalServerError, msgDonationFailed)
		return
	}
	draft.ID = id

	a.sendConfirmation(r, draft, campaign)

	a.ok(w, http.StatusCreated, msgDonationThanks, map[string]any{"submission_id": id})
}

// sendConfirmation emails the donor when notifications are enabled. Failures
// are logged only; the donation is already recorded.
func (a *App) sendConfirmation(r *http.Request, s *domain.Submission, c *domain.Campaign) {
	settings, err := a.Settings.Get(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("load settings for confirmation email")
		return
	}
	if !settings.EmailNotifications {
		return
	}
	conf := mailer.Confirmation{
		To:            s.Email,
		DonorName:     s.DonorName,
		CampaignTitle: c.Title,
		Amount:        currency.Format(c.Currency, s.Amount),
		SubmittedAt:   s.SubmittedAt,
		SubmissionID:  s.ID,
	}
	if err := a.Mail.SendDonationConfirmation(r.Context(), conf); err != nil {
		a.Logger.Error().Err(err).Int64("submission_id", s.ID).Msg("send confirmation email")
	}
}

// validationMessage strips the sentinel prefix so donors see the plain reason.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

// AdminListDonations returns a paginated submission listing with campaign
// titles. GET /v1/admin/donations
func (a *App) AdminListDonations(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		a.fail(w, http.StatusBadRequest, err.Error())
		return
	}
	f = f.Normalize()

	rows, err := a.Submissions.ListWithCampaign(r.Context(), f)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list submissions")
		a.fail(w, http.StatusInternalServerError, "Failed to load donations")
		return
	}
	total, err := a.Submissions.Count(r.Context(), f)
	if err != nil {
		a.Logger.Error().Err(err).Msg("count submissions")
		a.fail(w, http.StatusInternalServerError, "Failed to load donations")
		return
	}

	views := make([]submissionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, newJoinedSubmissionView(row))
	}

	page := 1
	if f.Limit > 0 {
		page = f.Offset/f.Limit + 1
	}
	totalPages := int64(0)
	if f.Limit > 0 {
		totalPages = (total + int64(f.Limit) - 1) / int64(f.Limit)
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":   true,
		"donations": views,
		"pagination": map[string]any{
			"page":        page,
			"per_page":    f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func parseListFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()
	var f domain.ListFilter
	if v := q.Get("campaign_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 {
			return f, errors.New("invalid campaign_id")
		}
		f.CampaignID = id
	}
	if v := q.Get("status"); v != "" {
		status := domain.SubmissionStatus(v)
		if !status.Valid() {
			return f, errors.New("invalid status filter")
		}
		f.Status = status
	}
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return f, errors.New("invalid per_page")
		}
		f.Limit = n
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, errors.New("invalid page")
		}
		limit := f.Limit
		if limit == 0 {
			limit = 20
		}
		f.Offset = (n - 1) * limit
	}
	f.OrderBy = q.Get("orderby")
	f.Order = q.Get("order")
	return f, nil
}

// AdminGetDonation returns a single submission plus its change log.
// GET /v1/admin/donations/{id}
func (a *App) AdminGetDonation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.fail(w, http.StatusNotFound, "Donation not found")
		return
	}
	s, err := a.Submissions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, "Donation not found")
			return
		}
		a.Logger.Error().Err(err).Int64("submission_id", id).Msg("load submission")
		a.fail(w, http.StatusInternalServerError, "Failed to load donation")
		return
	}
	logs, err := a.Submissions.Logs(r.Context(), id)
	if err != nil {
		a.Logger.Error().Err(err).Int64("submission_id", id).Msg("load payment logs")
		a.fail(w, http.StatusInternalServerError, "Failed to load donation")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"donation": newSubmissionView(*s),
		"logs":     logs,
	})
}

// statusUpdateRequest is the status-change payload. The nonce binds the call
// to the update action for the authenticated operator.
type statusUpdateRequest struct {
	Status    string  `json:"status"`
	PaymentID *string `json:"payment_id"`
	Notes     *string `json:"notes"`
	Nonce     string  `json:"nonce"`
}

// ActionUpdateStatus names the anti-forgery scope for status changes.
const ActionUpdateStatus = "campaign_update_status"

// AdminUpdateStatus applies a status change to one submission.
// POST /v1/admin/donations/{id}/status
func (a *App) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.fail(w, http.StatusNotFound, "Donation not found")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	subject := middleware.SubjectFromContext(r.Context())
	if err := middleware.VerifyNonce(a.Cfg.AuthSecret, ActionUpdateStatus, subject, req.Nonce, a.now(), a.Cfg.NonceTTL); err != nil {
		a.fail(w, http.StatusForbidden, "Security check failed")
		return
	}

	status := domain.SubmissionStatus(req.Status)
	if !status.Valid() {
		a.fail(w, http.StatusBadRequest, "Invalid status")
		return
	}

	upd := domain.SubmissionUpdate{Status: &status, PaymentID: req.PaymentID, Notes: req.Notes}
	if err := a.Submissions.Update(r.Context(), id, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, "Donation not found")
			return
		}
		a.Logger.Error().Err(err).Int64("submission_id", id).Msg("update submission status")
		a.fail(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	a.ok(w, http.StatusOK, "Status updated successfully", nil)
}
