package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"campaignd/internal/infra"
)

// SMTP delivers confirmations through a plain SMTP endpoint.
type SMTP struct {
	client *mail.Client
	from   string
}

// NewFromConfig builds the configured mailer: an SMTP client when SMTP_HOST
// is set, the no-op mailer otherwise.
func NewFromConfig(cfg *infra.Config) (Mailer, error) {
	if !cfg.MailEnabled() {
		return Nop{}, nil
	}
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}
	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTP{client: client, from: cfg.SMTPFrom}, nil
}

// SendDonationConfirmation delivers one confirmation email.
func (s *SMTP) SendDonationConfirmation(ctx context.Context, c Confirmation) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(c.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(confirmationSubject(c))
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(c))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTP)(nil)
