package handlers

import (
	"time"

	"campaignd/internal/currency"
	"campaignd/internal/domain"
	"campaignd/internal/report"
)

// submissionView is the wire shape of a donation submission.
type submissionView struct {
	ID            int64  `json:"id"`
	CampaignID    int64  `json:"campaign_id"`
	DonorName     string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentID     string `json:"payment_id,omitempty"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	DonorCountry  string `json:"donor_country,omitempty"`
	CampaignTitle string `json:"campaign_title,omitempty"`
	SubmittedAt   string `json:"submission_date"`
	UpdatedAt     string `json:"updated_at"`
}

const viewTimeLayout = "2006-01-02 15:04:05"

func newSubmissionView(s domain.Submission) submissionView {
	return submissionView{
		ID:            s.ID,
		CampaignID:    s.CampaignID,
		DonorName:     s.DonorName,
		Email:         s.Email,
		Phone:         s.Phone,
		Amount:        s.Amount.String(),
		PaymentMethod: s.PaymentMethod,
		PaymentID:     s.PaymentID,
		Status:        string(s.Status),
		Notes:         s.Notes,
		DonorCountry:  s.DonorCountry,
		SubmittedAt:   s.SubmittedAt.Format(viewTimeLayout),
		UpdatedAt:     s.UpdatedAt.Format(viewTimeLayout),
	}
}

func newJoinedSubmissionView(s domain.SubmissionWithCampaign) submissionView {
	v := newSubmissionView(s.Submission)
	if s.CampaignTitle != nil {
		v.CampaignTitle = *s.CampaignTitle
	} else {
		v.CampaignTitle = report.DeletedCampaignPlaceholder
	}
	return v
}

// campaignView is the wire shape of a campaign including its derived
// progress and deadline state.
type campaignView struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Target          string          `json:"target"`
	TargetFormatted string          `json:"target_formatted"`
	Currency        string          `json:"currency"`
	Deadline        string          `json:"deadline"`
	Status          string          `json:"status"`
	Progress        report.Progress `json:"progress"`
	DeadlineInfo    report.Deadline `json:"deadline_info"`
	Stats           *statsView      `json:"stats,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type statsView struct {
	TotalSubmissions   int64  `json:"total_submissions"`
	CompletedDonations int64  `json:"completed_donations"`
	PendingDonations   int64  `json:"pending_donations"`
	TotalRaised        string `json:"total_raised"`
	RaisedFormatted    string `json:"raised_formatted"`
	AvgDonation        string `json:"avg_donation,omitempty"`
}

func newCampaignView(c domain.Campaign, stats *domain.CampaignStats, now time.Time) campaignView {
	v := campaignView{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Target:          c.Target.String(),
		TargetFormatted: currency.Format(c.Currency, c.Target),
		Currency:        c.Currency,
		Deadline:        c.Deadline.Format("2006-01-02"),
		Status:          string(c.Status),
		DeadlineInfo:    report.DeadlineInfo(c.Deadline, c.Status, now),
		CreatedAt:       c.CreatedAt.Format(viewTimeLayout),
		UpdatedAt:       c.UpdatedAt.Format(viewTimeLayout),
	}
	if stats != nil {
		v.Progress = report.CampaignProgress(c.Target, stats.TotalRaised)
		sv := statsView{
			TotalSubmissions:   stats.TotalSubmissions,
			CompletedDonations: stats.CompletedDonations,
			PendingDonations:   stats.PendingDonations,
			TotalRaised:        stats.TotalRaised.String(),
			RaisedFormatted:    currency.Format(c.Currency, stats.TotalRaised),
		}
		if stats.AvgDonation != nil {
			sv.AvgDonation = stats.AvgDonation.String()
		}
		v.Stats = &sv
	}
	return v
}
