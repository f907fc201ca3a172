// Package mail delivers transactional email for the auth service. The
// Sender interface is what handlers depend on; delivery can happen
// directly over SMTP or asynchronously through the mail queue.
package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers the two notification kinds the auth flows produce.
// Implementations must be safe for concurrent use; callers treat every
// error as non-fatal.
type Sender interface {
	SendWelcome(ctx context.Context, toEmail, name string) error
	SendPasswordReset(ctx context.Context, toEmail, resetLink string) error
}

// SMTPConfig holds connection settings for the outbound mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail synchronously over SMTP with STARTTLS.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendWelcome sends the plain-text welcome message to a freshly registered
// user.
func (m *SMTPMailer) SendWelcome(ctx context.Context, toEmail, name string) error {
	return m.send(ctx, toEmail, welcomeSubject, gomail.TypeTextPlain, WelcomeBody(name))
}

// SendPasswordReset sends the HTML password-reset message containing the
// one-time reset link.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, toEmail, resetLink string) error {
	return m.send(ctx, toEmail, resetSubject, gomail.TypeTextHTML, ResetBody(resetLink))
}

func (m *SMTPMailer) send(ctx context.Context, to, subject string, ctype gomail.ContentType, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(ctype, body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}
