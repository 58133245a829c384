package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionStatus is the payment state of a donation submission.
//
// The set is a closed 4-value enumeration, but transitions between values are
// deliberately unvalidated: any status may be set to any other through the
// update operation so operators can correct records manually.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusCompleted SubmissionStatus = "completed"
	StatusFailed    SubmissionStatus = "failed"
	StatusCancelled SubmissionStatus = "cancelled"
)

// Valid reports whether s is one of the known submission states.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Submission is one donation record tied to a campaign.
type Submission struct {
	ID            int64
	CampaignID    int64
	DonorName     string
	Email         string
	Phone         string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentID     string
	Status        SubmissionStatus
	Notes         string
	DonorCountry  string
	SubmittedAt   time.Time
	UpdatedAt     time.Time
}

// SubmissionWithCampaign joins a submission with the title of its campaign.
// CampaignTitle is nil when the referenced campaign has been deleted.
type SubmissionWithCampaign struct {
	Submission
	CampaignTitle *string
}

// SubmissionInput is the raw donor-supplied form payload before validation.
type SubmissionInput struct {
	CampaignID    int64  `json:"-"` // taken from the URL, never the body
	DonorName     string `json:"donor_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// SubmissionUpdate is a partial update applied to an existing submission.
// Nil fields are left untouched.
type SubmissionUpdate struct {
	Status    *SubmissionStatus
	PaymentID *string
	Notes     *string
}

// Changed returns the non-nil fields as a map, for the payment-log snapshot.
func (u SubmissionUpdate) Changed() map[string]any {
	m := make(map[string]any, 3)
	if u.Status != nil {
		m["status"] = string(*u.Status)
	}
	if u.PaymentID != nil {
		m["payment_id"] = *u.PaymentID
	}
	if u.Notes != nil {
		m["notes"] = *u.Notes
	}
	return m
}

// ListFilter selects and orders submissions. Zero values mean "unconstrained";
// Limit -1 removes the row bound entirely (export path).
type ListFilter struct {
	CampaignID int64
	Status     SubmissionStatus
	Limit      int
	Offset     int
	OrderBy    string
	Order      string
}

// Normalize applies the listing defaults: 20 rows, newest first.
func (f ListFilter) Normalize() ListFilter {
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "submitted_at"
	}
	if f.Order == "" {
		f.Order = "DESC"
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// CampaignStats aggregates submissions of a single campaign.
// AvgDonation is nil when the campaign has no completed donations.
type CampaignStats struct {
	TotalSubmissions   int64
	CompletedDonations int64
	PendingDonations   int64
	TotalRaised        decimal.Decimal
	AvgDonation        *decimal.Decimal
}
