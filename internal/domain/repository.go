package domain

import "context"

// SubmissionRepository persists donation submissions and their audit trail.
type SubmissionRepository interface {
	Insert(ctx context.Context, s *Submission) (int64, error)
	Update(ctx context.Context, id int64, upd SubmissionUpdate) error
	Get(ctx context.Context, id int64) (*Submission, error)
	List(ctx context.Context, f ListFilter) ([]Submission, error)
	ListWithCampaign(ctx context.Context, f ListFilter) ([]SubmissionWithCampaign, error)
	Count(ctx context.Context, f ListFilter) (int64, error)
	CampaignStats(ctx context.Context, campaignID int64) (*CampaignStats, error)
	Logs(ctx context.Context, submissionID int64) ([]PaymentLog, error)
}

// CampaignRegistry is the read-only view of campaigns that the donation flow
// depends on. The content side of the system owns the records.
type CampaignRegistry interface {
	Get(ctx context.Context, id int64) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
}

// CampaignRepository adds the operator mutations on top of the registry.
type CampaignRepository interface {
	CampaignRegistry
	Create(ctx context.Context, c *Campaign) (int64, error)
	Update(ctx context.Context, c *Campaign) error
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository loads and stores the single settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s Settings) error
}

// StatsRepository computes the global dashboard aggregates.
type StatsRepository interface {
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
}
