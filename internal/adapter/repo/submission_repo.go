package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/sqlinline"
)

// Sortable columns for submission listings. Anything else falls back to the
// submission date so caller input never reaches the ORDER BY clause verbatim.
var submissionOrderColumns = map[string]string{
	"id":           "id",
	"amount":       "amount",
	"status":       "status",
	"donor_name":   "donor_name",
	"submitted_at": "submitted_at",
	"updated_at":   "updated_at",
}

// SubmissionRepositoryPG implements domain.SubmissionRepository on PostgreSQL.
type SubmissionRepositoryPG struct {
	sql    infra.SQLExecutor
	logger zerolog.Logger
}

// NewSubmissionRepository creates a submission repo on top of the SQL executor.
func NewSubmissionRepository(sqlx infra.SQLExecutor, logger zerolog.Logger) *SubmissionRepositoryPG {
	return &SubmissionRepositoryPG{sql: sqlx, logger: logger}
}

// Insert writes a new submission row and appends a "created" payment log entry
// holding the inserted field set. The log write is best-effort: a failure
// there is logged but does not undo the recorded donation.
func (r *SubmissionRepositoryPG) Insert(ctx context.Context, s *domain.Submission) (int64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertSubmission,
		s.CampaignID, s.DonorName, s.Email, s.Phone, s.Amount.String(),
		s.PaymentMethod, s.PaymentID, string(s.Status), s.Notes, s.DonorCountry)
	if err := row.Scan(&s.ID, &s.SubmittedAt); err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}

	snapshot := map[string]any{
		"campaign_id":    s.CampaignID,
		"donor_name":     s.DonorName,
		"email":          s.Email,
		"phone":          s.Phone,
		"amount":         s.Amount.String(),
		"payment_method": s.PaymentMethod,
		"payment_id":     s.PaymentID,
		"status":         string(s.Status),
		"notes":          s.Notes,
	}
	r.appendLog(ctx, s.ID, domain.LogActionCreated, "Submission created", snapshot)
	return s.ID, nil
}

// Update applies a partial update by id and appends an "updated" payment log
// entry with the changed fields. domain.ErrNotFound is returned when the id
// does not exist.
func (r *SubmissionRepositoryPG) Update(ctx context.Context, id int64, upd domain.SubmissionUpdate) error {
	changed := upd.Changed()
	if len(changed) == 0 {
		return nil
	}

	var status, paymentID, notes *string
	if upd.Status != nil {
		v := string(*upd.Status)
		status = &v
	}
	paymentID = upd.PaymentID
	notes = upd.Notes

	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateSubmission, id, status, paymentID, notes)
	if err != nil {
		return fmt.Errorf("update submission %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.appendLog(ctx, id, domain.LogActionUpdated, "Submission updated", changed)
	return nil
}

// Get returns a submission by id, or domain.ErrNotFound.
func (r *SubmissionRepositoryPG) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSubmissionByID, id)
	s, err := scanSubmission(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get submission %d: %w", id, err)
	}
	return s, nil
}

// List returns submissions matching the filter, AND semantics across the
// provided constraints.
func (r *SubmissionRepositoryPG) List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, error) {
	f = f.Normalize()
	query := fmt.Sprintf(sqlinline.QListSubmissions, r.orderColumn(f.OrderBy), orderDirection(f.Order))
	rows, err := r.sql.Query(ctx, query, f.CampaignID, string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var items []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListWithCampaign returns submissions joined with their campaign title; the
// title is nil when the campaign has been deleted.
func (r *SubmissionRepositoryPG) ListWithCampaign(ctx context.Context, f domain.ListFilter) ([]domain.SubmissionWithCampaign, error) {
	f = f.Normalize()
	query := fmt.Sprintf(sqlinline.QListSubmissionsWithCampaign, "s."+r.orderColumn(f.OrderBy), orderDirection(f.Order))
	rows, err := r.sql.Query(ctx, query, f.CampaignID, string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list submissions with campaign: %w", err)
	}
	defer rows.Close()

	var items []domain.SubmissionWithCampaign
	for rows.Next() {
		var (
			item      domain.SubmissionWithCampaign
			amountStr string
			title     sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.CampaignID, &item.DonorName, &item.Email, &item.Phone,
			&amountStr, &item.PaymentMethod, &item.PaymentID, (*string)(&item.Status), &item.Notes,
			&item.DonorCountry, &item.SubmittedAt, &item.UpdatedAt, &title); err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amountStr, err)
		}
		item.Amount = amount
		if title.Valid {
			t := title.String
			item.CampaignTitle = &t
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of submissions matching the filter constraints,
// ignoring pagination.
func (r *SubmissionRepositoryPG) Count(ctx context.Context, f domain.ListFilter) (int64, error) {
	var total int64
	row := r.sql.QueryRow(ctx, sqlinline.QCountSubmissions, f.CampaignID, string(f.Status))
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return total, nil
}

// CampaignStats aggregates the submissions of one campaign. AvgDonation is
// nil when the campaign has no completed donations.
func (r *SubmissionRepositoryPG) CampaignStats(ctx context.Context, campaignID int64) (*domain.CampaignStats, error) {
	var (
		stats  domain.CampaignStats
		raised string
		avg    sql.NullString
	)
	row := r.sql.QueryRow(ctx, sqlinline.QCampaignStats, campaignID)
	if err := row.Scan(&stats.TotalSubmissions, &stats.CompletedDonations, &stats.PendingDonations, &raised, &avg); err != nil {
		return nil, fmt.Errorf("campaign stats %d: %w", campaignID, err)
	}
	total, err := decimal.NewFromString(raised)
	if err != nil {
		return nil, fmt.Errorf("parse total raised %q: %w", raised, err)
	}
	stats.TotalRaised = total
	if avg.Valid {
		v, err := decimal.NewFromString(avg.String)
		if err != nil {
			return nil, fmt.Errorf("parse avg donation %q: %w", avg.String, err)
		}
		stats.AvgDonation = &v
	}
	return &stats, nil
}

// Logs returns the audit trail of a submission, oldest first.
func (r *SubmissionRepositoryPG) Logs(ctx context.Context, submissionID int64) ([]domain.PaymentLog, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPaymentLogs, submissionID)
	if err != nil {
		return nil, fmt.Errorf("list payment logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.PaymentLog
	for rows.Next() {
		var (
			entry domain.PaymentLog
			data  []byte
		)
		if err := rows.Scan(&entry.ID, &entry.SubmissionID, &entry.Action, &entry.Message, &data, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment log: %w", err)
		}
		entry.LogData = json.RawMessage(data)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *SubmissionRepositoryPG) appendLog(ctx context.Context, submissionID int64, action, message string, data map[string]any) {
	payload, err := json.Marshal(data)
	if err != nil {
		payload = []byte("{}")
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QInsertPaymentLog, submissionID, action, message, payload); err != nil {
		r.logger.Error().Err(err).Int64("submission_id", submissionID).Str("action", action).Msg("payment log write failed")
	}
}

func (r *SubmissionRepositoryPG) orderColumn(requested string) string {
	if col, ok := submissionOrderColumns[strings.ToLower(requested)]; ok {
		return col
	}
	return "submitted_at"
}

func orderDirection(requested string) string {
	if strings.EqualFold(requested, "ASC") {
		return "ASC"
	}
	return "DESC"
}

func scanSubmission(scan func(dest ...any) error) (*domain.Submission, error) {
	var (
		s         domain.Submission
		amountStr string
	)
	if err := scan(&s.ID, &s.CampaignID, &s.DonorName, &s.Email, &s.Phone, &amountStr,
		&s.PaymentMethod, &s.PaymentID, (*string)(&s.Status), &s.Notes, &s.DonorCountry,
		&s.SubmittedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	s.Amount = amount
	return &s, nil
}

var _ domain.SubmissionRepository = (*SubmissionRepositoryPG)(nil)
