package repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/sqlinline"
)

// StatsRepositoryPG computes the dashboard aggregates. Figures are always
// computed on demand by aggregation query; nothing is cached.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a stats repo on top of the SQL executor.
func NewStatsRepository(sqlx infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sqlx}
}

// DashboardSummary returns the global totals plus the calendar-month,
// calendar-day and trailing-7-day windows.
func (r *StatsRepositoryPG) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	var (
		summary     domain.DashboardSummary
		totalRaised string
		monthRaised string
		todayAmount string
	)
	row := r.sql.QueryRow(ctx, sqlinline.QSubmissionSummary)
	if err := row.Scan(&summary.TotalSubmissions, &summary.CompletedDonations, &summary.PendingDonations,
		&totalRaised, &summary.MonthDonations, &monthRaised, &summary.TodayDonations, &todayAmount,
		&summary.WeekDonations); err != nil {
		return nil, fmt.Errorf("submission summary: %w", err)
	}

	for _, pair := range []struct {
		src string
		dst *decimal.Decimal
	}{
		{totalRaised, &summary.TotalRaised},
		{monthRaised, &summary.MonthRaised},
		{todayAmount, &summary.TodayAmount},
	} {
		v, err := decimal.NewFromString(pair.src)
		if err != nil {
			return nil, fmt.Errorf("parse aggregate %q: %w", pair.src, err)
		}
		*pair.dst = v
	}

	row = r.sql.QueryRow(ctx, sqlinline.QCampaignCounts)
	if err := row.Scan(&summary.TotalCampaigns, &summary.ActiveCampaigns); err != nil {
		return nil, fmt.Errorf("campaign counts: %w", err)
	}
	return &summary, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
