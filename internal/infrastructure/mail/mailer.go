package mail

import (
	"context"
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// SMTPMailer delivers HTML mail over SMTP using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
