package notification

import (
	"fmt"

	"autodetail/config"
)

// NewEmailSenderFromConfig builds the configured email channel.
func NewEmailSenderFromConfig(cfg config.Config) (EmailSender, error) {
	switch cfg.EmailProvider {
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("notification: RESEND_API_KEY is required for the resend provider")
		}
		return NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom), nil
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("notification: SMTP_HOST is required for the smtp provider")
		}
		return NewSMTPEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom), nil
	case "gmail":
		if cfg.GmailClientID == "" || cfg.GmailRefreshToken == "" {
			return nil, fmt.Errorf("notification: gmail provider requires GMAIL_CLIENT_ID and GMAIL_REFRESH_TOKEN")
		}
		conf := NewGmailOAuthConfig(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRedirectURL)
		return NewGmailEmailSender(conf, cfg.GmailRefreshToken, cfg.EmailFrom), nil
	default:
		return nil, fmt.Errorf("notification: unknown email provider %q", cfg.EmailProvider)
	}
}

// NewSMSSenderFromConfig builds the Twilio channel, or nil when unconfigured.
func NewSMSSenderFromConfig(cfg config.Config) SMSSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil
	}
	return NewTwilioSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
}
