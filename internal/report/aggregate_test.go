package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"campaignd/internal/domain"
)

func TestCampaignProgressBasic(t *testing.T) {
	p := CampaignProgress(decimal.NewFromInt(100000), decimal.NewFromInt(60000))
	assert.Equal(t, 60.0, p.Raw)
	assert.Equal(t, 60.0, p.Display)
}

func TestCampaignProgressZeroTarget(t *testing.T) {
	p := CampaignProgress(decimal.Zero, decimal.NewFromInt(60000))
	assert.Equal(t, 0.0, p.Raw)
	assert.Equal(t, 0.0, p.Display)
}

func TestCampaignProgressOverTargetClampsDisplayOnly(t *testing.T) {
	p := CampaignProgress(decimal.NewFromInt(100000), decimal.NewFromInt(150000))
	assert.Equal(t, 150.0, p.Raw)
	assert.Equal(t, 100.0, p.Display)
}

func TestCampaignProgressRoundsToOneDecimal(t *testing.T) {
	p := CampaignProgress(decimal.NewFromInt(3), decimal.NewFromInt(1))
	assert.Equal(t, 33.3, p.Raw)
}

func TestDeadlineInfoFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	d := DeadlineInfo(deadline, domain.CampaignActive, now)
	assert.False(t, d.IsExpired)
	assert.True(t, d.IsActive)
	assert.Equal(t, 10, d.DaysLeft)
}

func TestDeadlineInfoPartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(25 * time.Hour)

	d := DeadlineInfo(deadline, domain.CampaignActive, now)
	assert.Equal(t, 2, d.DaysLeft)
}

func TestDeadlineInfoExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	d := DeadlineInfo(deadline, domain.CampaignActive, now)
	assert.True(t, d.IsExpired)
	assert.False(t, d.IsActive)
	assert.Equal(t, 0, d.DaysLeft)
}

func TestDeadlineInfoPausedCampaignNeverActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	d := DeadlineInfo(deadline, domain.CampaignPaused, now)
	assert.False(t, d.IsExpired)
	assert.False(t, d.IsActive)
}
