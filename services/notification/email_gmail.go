package notification

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailEmailSender delivers email through the Gmail API using an OAuth2
// refresh token for the connected sending account.
type GmailEmailSender struct {
	tokenSource oauth2.TokenSource
	from        string
}

// NewGmailOAuthConfig builds the OAuth2 config for the Gmail send scope.
func NewGmailOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
}

// NewGmailEmailSender creates an EmailSender backed by the Gmail API.
// refreshToken comes from the one-time OAuth consent flow for the sending
// account; access tokens are minted from it on demand.
func NewGmailEmailSender(conf *oauth2.Config, refreshToken, from string) *GmailEmailSender {
	token := &oauth2.Token{RefreshToken: refreshToken}
	return &GmailEmailSender{
		tokenSource: conf.TokenSource(context.Background(), token),
		from:        from,
	}
}

func (s *GmailEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	svc, err := gmail.NewService(ctx, option.WithTokenSource(s.tokenSource))
	if err != nil {
		return fmt.Errorf("gmail: failed to create service: %w", err)
	}

	raw := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		to, s.from, subject, htmlBody)
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}

	if _, err := svc.Users.Messages.Send("me", msg).Do(); err != nil {
		return fmt.Errorf("gmail: failed to send email to %s: %w", to, err)
	}
	return nil
}
