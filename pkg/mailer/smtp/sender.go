// Package smtp implements mailer.Sender over authenticated SMTP submission
// with STARTTLS, suitable for Gmail app passwords and similar providers.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mail "github.com/wneessen/go-mail"

	"github.com/mehdireddad/dailybrief/pkg/mailer"
)

// Sender implements mailer.Sender using SMTP submission.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. Authentication rejections are reported as
// mailer.ErrAuthFailed so callers can surface a credentials hint.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.buildMessage(email)
	if err != nil {
		return fmt.Errorf("smtp: failed to build message: %w", err)
	}

	client, err := mail.NewClient(s.config.Host,
		mail.WithPort(s.config.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.Username),
		mail.WithPassword(s.config.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp: failed to create client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		if isAuthError(err) {
			return errors.Join(mailer.ErrAuthFailed, err)
		}
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return nil
}

// buildMessage converts a mailer.Email into a multipart message with the
// plain-text part first and the HTML part as the preferred alternative.
func (s *Sender) buildMessage(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = s.config.Username
	}
	if err := msg.From(from); err != nil {
		return nil, err
	}
	if err := msg.To(email.To...); err != nil {
		return nil, err
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, err
		}
	}

	msg.Subject(email.Subject)

	text := email.Text
	if text == "" {
		text = "Please enable HTML to view this email."
	}
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	return msg, nil
}

// isAuthError classifies SMTP authentication rejections (e.g. Gmail 535).
func isAuthError(err error) bool {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Reason == mail.ErrSMTPAuth {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "535") || strings.Contains(strings.ToLower(msg), "authentication")
}
