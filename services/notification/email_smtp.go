package notification

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPEmailSender delivers email over plain SMTP with AUTH PLAIN.
type SMTPEmailSender struct {
	host string
	port int
	auth smtp.Auth
	from string
}

// NewSMTPEmailSender creates an EmailSender backed by an SMTP relay.
func NewSMTPEmailSender(host string, port int, username, password, from string) *SMTPEmailSender {
	return &SMTPEmailSender{
		host: host,
		port: port,
		auth: smtp.PlainAuth("", username, password, host),
		from: from,
	}
}

func (s *SMTPEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		to, s.from, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, s.auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp: failed to send email to %s via %s: %w", to, s.host, err)
	}
	return nil
}
