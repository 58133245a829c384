package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"campaignd/internal/domain"
)

// DeletedCampaignPlaceholder substitutes the campaign title in listings and
// exports when the referenced campaign no longer exists.
const DeletedCampaignPlaceholder = "Deleted Campaign"

// CSVHeader is the fixed export column set. Order matters to downstream
// spreadsheets; do not reorder.
var CSVHeader = []string{"ID", "Name", "Email", "Phone", "Amount", "Campaign", "Status", "Date", "Payment Method", "Payment ID"}

const csvDateLayout = "2006-01-02 15:04:05"

// WriteCSV serializes the full result set to w: one header line followed by
// one line per submission. The caller is expected to pass an unbounded
// listing; no pagination happens here.
func WriteCSV(w io.Writer, rows []domain.SubmissionWithCampaign) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		title := DeletedCampaignPlaceholder
		if row.CampaignTitle != nil {
			title = *row.CampaignTitle
		}
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.DonorName,
			row.Email,
			row.Phone,
			row.Amount.String(),
			title,
			string(row.Status),
			row.SubmittedAt.Format(csvDateLayout),
			row.PaymentMethod,
			row.PaymentID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the attachment name for a CSV download generated at
// the given time.
func ExportFilename(now time.Time) string {
	return "campaign-donations-" + now.Format("2006-01-02") + ".csv"
}
