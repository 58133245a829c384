package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the operator-managed lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known campaign states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}

// Campaign is a fundraising effort with a target amount and deadline.
// The donation subsystem treats campaigns as read-only; only operator
// endpoints mutate them.
type Campaign struct {
	ID          int64
	Title       string
	Description string
	Target      decimal.Decimal
	Currency    string
	Deadline    time.Time
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExpired reports whether the campaign deadline has passed at the given instant.
func (c *Campaign) IsExpired(now time.Time) bool {
	return c.Deadline.Before(now)
}

// IsAcceptingDonations reports whether the campaign may receive new submissions.
func (c *Campaign) IsAcceptingDonations(now time.Time) bool {
	return c.Status == CampaignActive && !c.IsExpired(now)
}

// CampaignInput carries operator-supplied campaign fields for create/update.
type CampaignInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Currency    string `json:"currency"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	Status      string `json:"status"`
}
