package repo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"campaignd/internal/domain"
	"campaignd/internal/sqlinline"
)

func testSubmission() *domain.Submission {
	return &domain.Submission{
		CampaignID:    7,
		DonorName:     "Siti Rahma",
		Email:         "siti@example.com",
		Phone:         "+628123456789",
		Amount:        decimal.NewFromInt(50000),
		PaymentMethod: "manual",
		Status:        domain.StatusPending,
	}
}

func TestSubmissionInsertWritesCreatedLog(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	fake := &fakeExecutor{
		rowQueue: []pgx.Row{fakeRow{values: []any{int64(42), now}}},
		execTags: []pgconn.CommandTag{pgconn.NewCommandTag("INSERT 0 1")},
	}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	s := testSubmission()
	id, err := r.Insert(context.Background(), s)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 42 || s.ID != 42 {
		t.Fatalf("id = %d, submission.ID = %d, want 42", id, s.ID)
	}
	if !s.SubmittedAt.Equal(now) {
		t.Fatalf("SubmittedAt = %v, want %v", s.SubmittedAt, now)
	}

	if len(fake.execCalls) != 1 {
		t.Fatalf("exec calls = %d, want 1 (payment log)", len(fake.execCalls))
	}
	logCall := fake.execCalls[0]
	if logCall.query != sqlinline.QInsertPaymentLog {
		t.Fatalf("unexpected log query: %q", logCall.query)
	}
	if logCall.args[0] != int64(42) || logCall.args[1] != domain.LogActionCreated {
		t.Fatalf("log args = %v", logCall.args)
	}
	var snapshot map[string]any
	if err := json.Unmarshal(logCall.args[3].([]byte), &snapshot); err != nil {
		t.Fatalf("log data not json: %v", err)
	}
	if snapshot["amount"] != "50000" {
		t.Fatalf("snapshot amount = %v, want 50000", snapshot["amount"])
	}
}

func TestSubmissionInsertSurvivesLogFailure(t *testing.T) {
	fake := &fakeExecutor{
		rowQueue: []pgx.Row{fakeRow{values: []any{int64(9), time.Now()}}},
		execErrs: []error{errors.New("log table gone")},
	}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	if _, err := r.Insert(context.Background(), testSubmission()); err != nil {
		t.Fatalf("Insert should ignore log failure, got %v", err)
	}
}

func TestSubmissionUpdateNotFound(t *testing.T) {
	fake := &fakeExecutor{execTags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 0")}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	status := domain.StatusCompleted
	err := r.Update(context.Background(), 99, domain.SubmissionUpdate{Status: &status})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(fake.execCalls) != 1 {
		t.Fatalf("exec calls = %d; no log entry expected for a missing row", len(fake.execCalls))
	}
}

func TestSubmissionUpdateWritesChangedLog(t *testing.T) {
	fake := &fakeExecutor{execTags: []pgconn.CommandTag{
		pgconn.NewCommandTag("UPDATE 1"),
		pgconn.NewCommandTag("INSERT 0 1"),
	}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	status := domain.StatusCompleted
	paymentID := "trx-889"
	err := r.Update(context.Background(), 12, domain.SubmissionUpdate{Status: &status, PaymentID: &paymentID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(fake.execCalls) != 2 {
		t.Fatalf("exec calls = %d, want update + log", len(fake.execCalls))
	}

	var changed map[string]any
	if err := json.Unmarshal(fake.execCalls[1].args[3].([]byte), &changed); err != nil {
		t.Fatalf("log data not json: %v", err)
	}
	if changed["status"] != "completed" || changed["payment_id"] != "trx-889" {
		t.Fatalf("changed = %v", changed)
	}
	if _, ok := changed["notes"]; ok {
		t.Fatal("notes was not part of the update, must not be logged")
	}
}

func TestSubmissionUpdateNoFieldsIsNoop(t *testing.T) {
	fake := &fakeExecutor{}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	if err := r.Update(context.Background(), 5, domain.SubmissionUpdate{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(fake.execCalls) != 0 {
		t.Fatalf("exec calls = %d, want none", len(fake.execCalls))
	}
}

func TestSubmissionGetNotFound(t *testing.T) {
	fake := &fakeExecutor{rowQueue: []pgx.Row{fakeRow{err: pgx.ErrNoRows}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	_, err := r.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmissionListOrderWhitelist(t *testing.T) {
	fake := &fakeExecutor{}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	_, err := r.List(context.Background(), domain.ListFilter{OrderBy: "email; drop table submissions", Order: "sideways"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	query := fake.queryCalls[0].query
	if !strings.Contains(query, "order by submitted_at DESC") {
		t.Fatalf("unexpected order clause in query:\n%s", query)
	}
}

func TestSubmissionListPassesFilterArgs(t *testing.T) {
	fake := &fakeExecutor{}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	_, err := r.List(context.Background(), domain.ListFilter{CampaignID: 3, Status: domain.StatusPending, Limit: 50, Offset: 100})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	args := fake.queryCalls[0].args
	want := []any{int64(3), "pending", 50, 100}
	for i, w := range want {
		if args[i] != w {
			t.Fatalf("arg[%d] = %v, want %v", i, args[i], w)
		}
	}
}

func TestSubmissionListScansRows(t *testing.T) {
	at := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
	fake := &fakeExecutor{rowsQueue: []pgx.Rows{&fakeRows{rows: [][]any{
		{int64(1), int64(7), "Siti", "siti@example.com", "0812", "50000", "manual", "", "pending", "", "ID", at, at},
	}}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	items, err := r.List(context.Background(), domain.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	got := items[0]
	if got.ID != 1 || got.Status != domain.StatusPending || got.DonorCountry != "ID" {
		t.Fatalf("unexpected row: %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("amount = %s", got.Amount)
	}
}

func TestSubmissionListWithCampaignNullTitle(t *testing.T) {
	at := time.Now()
	fake := &fakeExecutor{rowsQueue: []pgx.Rows{&fakeRows{rows: [][]any{
		{int64(1), int64(7), "A", "a@example.com", "1", "10", "manual", "", "pending", "", "", at, at, "Clean Water"},
		{int64(2), int64(8), "B", "b@example.com", "2", "20", "manual", "", "pending", "", "", at, at, nil},
	}}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	items, err := r.ListWithCampaign(context.Background(), domain.ListFilter{})
	if err != nil {
		t.Fatalf("ListWithCampaign: %v", err)
	}
	if items[0].CampaignTitle == nil || *items[0].CampaignTitle != "Clean Water" {
		t.Fatalf("title = %v", items[0].CampaignTitle)
	}
	if items[1].CampaignTitle != nil {
		t.Fatalf("deleted campaign must scan as nil title, got %q", *items[1].CampaignTitle)
	}
}

func TestCampaignStatsNullAverage(t *testing.T) {
	fake := &fakeExecutor{rowQueue: []pgx.Row{fakeRow{values: []any{int64(3), int64(0), int64(3), "0", nil}}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	stats, err := r.CampaignStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("CampaignStats: %v", err)
	}
	if stats.AvgDonation != nil {
		t.Fatalf("avg = %v, want nil with no completed donations", stats.AvgDonation)
	}
	if !stats.TotalRaised.IsZero() {
		t.Fatalf("raised = %s, want 0", stats.TotalRaised)
	}
}

func TestCampaignStatsParsesAggregates(t *testing.T) {
	fake := &fakeExecutor{rowQueue: []pgx.Row{fakeRow{values: []any{int64(5), int64(2), int64(3), "120000", "60000"}}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	stats, err := r.CampaignStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("CampaignStats: %v", err)
	}
	if stats.TotalSubmissions != 5 || stats.CompletedDonations != 2 || stats.PendingDonations != 3 {
		t.Fatalf("counts = %+v", stats)
	}
	if !stats.TotalRaised.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("raised = %s", stats.TotalRaised)
	}
	if stats.AvgDonation == nil || !stats.AvgDonation.Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("avg = %v", stats.AvgDonation)
	}
}

func TestSubmissionLogsScan(t *testing.T) {
	at := time.Now()
	fake := &fakeExecutor{rowsQueue: []pgx.Rows{&fakeRows{rows: [][]any{
		{int64(1), int64(42), "created", "Submission created", []byte(`{"amount":"50000"}`), at},
	}}}}
	r := NewSubmissionRepository(fake, zerolog.Nop())

	logs, err := r.Logs(context.Background(), 42)
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != domain.LogActionCreated {
		t.Fatalf("logs = %+v", logs)
	}
	if string(logs[0].LogData) != `{"amount":"50000"}` {
		t.Fatalf("log data = %s", logs[0].LogData)
	}
}
