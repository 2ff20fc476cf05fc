package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/diewo77/portfolio-app/internal/config"
)

// SMTPMailer sends contact messages over SMTP. A fresh client per send
// keeps the type stateless; contact-form volume does not warrant pooling.
type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTP(cfg config.SMTP) *SMTPMailer { return &SMTPMailer{cfg: cfg} }

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if err := msg.ReplyTo(m.Email); err != nil {
		return fmt.Errorf("mail reply-to: %w", err)
	}
	msg.Subject("Portfolio contact: " + m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body())

	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
