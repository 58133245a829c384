package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/sqlinline"
)

// CampaignRepositoryPG implements domain.CampaignRepository on PostgreSQL.
// The donation flow only sees the read side through domain.CampaignRegistry.
type CampaignRepositoryPG struct {
	sql    infra.SQLExecutor
	logger zerolog.Logger
}

// NewCampaignRepository creates a campaign repo on top of the SQL executor.
func NewCampaignRepository(sqlx infra.SQLExecutor, logger zerolog.Logger) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sqlx, logger: logger}
}

// Create inserts a campaign and returns its generated id.
func (r *CampaignRepositoryPG) Create(ctx context.Context, c *domain.Campaign) (int64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCampaign,
		c.Title, c.Description, c.Target.String(), c.Currency, c.Deadline, string(c.Status))
	if err := row.Scan(&c.ID); err != nil {
		return 0, fmt.Errorf("insert campaign: %w", err)
	}
	return c.ID, nil
}

// Update rewrites the operator-editable fields of a campaign.
func (r *CampaignRepositoryPG) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateCampaign,
		c.ID, c.Title, c.Description, c.Target.String(), c.Currency, c.Deadline, string(c.Status))
	if err != nil {
		return fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a campaign record. Submissions referencing it survive and
// render with the deleted-campaign placeholder.
func (r *CampaignRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCampaign, id)
	if err != nil {
		return fmt.Errorf("delete campaign %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get returns a campaign by id, or domain.ErrNotFound.
func (r *CampaignRepositoryPG) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, id)
	c, err := scanCampaign(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	return c, nil
}

// List returns all campaigns, newest first.
func (r *CampaignRepositoryPG) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaigns)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanCampaign(scan func(dest ...any) error) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		targetStr string
	)
	if err := scan(&c.ID, &c.Title, &c.Description, &targetStr, &c.Currency,
		&c.Deadline, (*string)(&c.Status), &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("parse target %q: %w", targetStr, err)
	}
	c.Target = target
	return &c, nil
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
