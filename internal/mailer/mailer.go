// Package mailer sends donor-facing notification email. Sending is always
// best-effort: the donation is already recorded by the time a confirmation
// goes out, so failures are logged and swallowed, never retried.
package mailer

import (
	"context"
	"fmt"
	"time"
)

// Confirmation is the data rendered into a donation confirmation email.
type Confirmation struct {
	To            string
	DonorName     string
	CampaignTitle string
	Amount        string // already formatted for the campaign currency
	SubmittedAt   time.Time
	SubmissionID  int64
}

// Mailer delivers donor notifications.
type Mailer interface {
	SendDonationConfirmation(ctx context.Context, c Confirmation) error
}

// Subject and body mirror what donors have been receiving; keep wording
// changes coordinated with support.
func confirmationSubject(c Confirmation) string {
	return "Donation Confirmation - " + c.CampaignTitle
}

func confirmationBody(c Confirmation) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your donation to "%s".

Donation Details:
- Amount: %s
- Campaign: %s
- Date: %s
- Transaction ID: %d

Your donation is currently being processed. You will receive another email once the payment is confirmed.

Thank you for your support!
`, c.DonorName, c.CampaignTitle, c.Amount, c.CampaignTitle, c.SubmittedAt.Format("02 January 2006 15:04"), c.SubmissionID)
}

// Nop is the mailer used when no SMTP endpoint is configured.
type Nop struct{}

// SendDonationConfirmation does nothing.
func (Nop) SendDonationConfirmation(context.Context, Confirmation) error { return nil }

var _ Mailer = Nop{}
