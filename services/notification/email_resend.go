package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers email through the Resend API.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

// NewResendEmailSender creates an EmailSender backed by Resend.
func NewResendEmailSender(apiKey, from string) *ResendEmailSender {
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: failed to send email to %s: %w", to, err)
	}
	return nil
}
