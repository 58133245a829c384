// Package report holds the derived reporting views: campaign progress,
// deadline arithmetic and the CSV serialization of submission listings.
package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
)

// Progress is a campaign's funding progress. Raw is the unclamped percentage
// (can exceed 100 for over-target campaigns); Display is clamped to [0, 100]
// for progress bars.
type Progress struct {
	Raw     float64 `json:"raw_pct"`
	Display float64 `json:"display_pct"`
}

// CampaignProgress computes raised/target*100. A zero or unset target yields
// zero rather than a division by zero.
func CampaignProgress(target, raised decimal.Decimal) Progress {
	if !target.IsPositive() {
		return Progress{}
	}
	raw, _ := raised.Div(target).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	display := math.Min(math.Max(raw, 0), 100)
	return Progress{Raw: raw, Display: display}
}

// Deadline is the time-derived state of a campaign.
type Deadline struct {
	IsExpired bool `json:"is_expired"`
	IsActive  bool `json:"is_active"`
	DaysLeft  int  `json:"days_left"`
}

// DeadlineInfo derives expiry and remaining days at the given instant.
// DaysLeft rounds up (a campaign ending tomorrow morning shows 1 day) and is
// floored at zero once expired.
func DeadlineInfo(deadline time.Time, status domain.CampaignStatus, now time.Time) Deadline {
	expired := deadline.Before(now)
	days := 0
	if !expired {
		days = int(math.Ceil(deadline.Sub(now).Hours() / 24))
	}
	return Deadline{
		IsExpired: expired,
		IsActive:  status == domain.CampaignActive && !expired,
		DaysLeft:  days,
	}
}
