package mail

import (
	"context"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers relay messages through gomail.
type SMTPSender struct {
	from   string
	dialer dialer
}

var _ interfaces.IMailSender = (*SMTPSender)(nil)

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	if from == "" {
		from = user
	}
	return &SMTPSender{from: from, dialer: gomail.NewDialer(host, port, user, pass)}
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.OutgoingMail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.MessageID != "" {
		m.SetHeader("Message-ID", "<"+msg.MessageID+">")
	}
	m.SetBody("text/html", msg.HTMLBody)
	if len(msg.Attachment) > 0 {
		attachment := msg.Attachment
		m.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	log.Info().Str("component", "smtp_sender").Str("message_id", msg.MessageID).Str("to", msg.To).Msg("email sent")
	return nil
}
