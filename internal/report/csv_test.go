package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignd/internal/domain"
)

func sampleRow(id int64, title *string) domain.SubmissionWithCampaign {
	return domain.SubmissionWithCampaign{
		Submission: domain.Submission{
			ID:            id,
			CampaignID:    7,
			DonorName:     "Budi Santoso",
			Email:         "budi@example.com",
			Phone:         "+62 812-3456-7890",
			Amount:        decimal.NewFromInt(50000),
			PaymentMethod: "manual",
			PaymentID:     "PAY-123",
			Status:        domain.StatusCompleted,
			SubmittedAt:   time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
		},
		CampaignTitle: title,
	}
}

func TestWriteCSVProducesHeaderPlusOneLinePerRow(t *testing.T) {
	title := "Clean Water"
	rows := []domain.SubmissionWithCampaign{
		sampleRow(1, &title),
		sampleRow(2, &title),
		sampleRow(3, &title),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(rows)+1)

	parsed, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, CSVHeader, parsed[0])
	assert.Equal(t, "Budi Santoso", parsed[1][1])
	assert.Equal(t, "50000", parsed[1][4])
	assert.Equal(t, "Clean Water", parsed[1][5])
	assert.Equal(t, "2025-03-04 10:30:00", parsed[1][7])
}

func TestWriteCSVSubstitutesDeletedCampaignPlaceholder(t *testing.T) {
	rows := []domain.SubmissionWithCampaign{sampleRow(9, nil)}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	parsed, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, DeletedCampaignPlaceholder, parsed[1][5])
}

func TestWriteCSVEmptyResultIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "campaign-donations-2025-03-04.csv", ExportFilename(now))
}
