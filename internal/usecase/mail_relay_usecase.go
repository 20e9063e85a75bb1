package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingRelayField = errors.New("missing required field")
	ErrInvalidPDF        = errors.New("pdfBase64 is not valid base64")
	ErrMailDelivery      = errors.New("mail delivery failed")
)

// IMailRelayUseCase backs the send-orcamento endpoint of the mail relay.
type IMailRelayUseCase interface {
	SendQuote(ctx context.Context, msg interfaces.QuoteEmail) (messageID string, err error)
}

type MailRelayUseCase struct {
	sender   interfaces.IMailSender
	composer interfaces.IMailComposer
	domain   string
}

var _ IMailRelayUseCase = (*MailRelayUseCase)(nil)

// NewMailRelayUseCase builds the relay; domain is the right-hand side of the
// generated Message-IDs.
func NewMailRelayUseCase(sender interfaces.IMailSender, composer interfaces.IMailComposer, domain string) *MailRelayUseCase {
	if domain == "" {
		domain = "gestao-comercial"
	}
	return &MailRelayUseCase{sender: sender, composer: composer, domain: domain}
}

// SendQuote validates the payload, wraps it in the fixed body and delivers it
// once. There is no retry.
func (u *MailRelayUseCase) SendQuote(ctx context.Context, msg interfaces.QuoteEmail) (string, error) {
	msg.To = strings.TrimSpace(msg.To)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.ClientName = strings.TrimSpace(msg.ClientName)
	msg.QuoteNumber = strings.TrimSpace(msg.QuoteNumber)
	msg.TotalValue = strings.TrimSpace(msg.TotalValue)
	msg.ApprovalLink = strings.TrimSpace(msg.ApprovalLink)

	required := []struct{ name, value string }{
		{"to", msg.To},
		{"subject", msg.Subject},
		{"clienteNome", msg.ClientName},
		{"numeroOrcamento", msg.QuoteNumber},
		{"valorTotal", msg.TotalValue},
		{"pdfBase64", msg.PDFBase64},
	}
	for _, f := range required {
		if f.value == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingRelayField, f.name)
		}
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	pdf, err := decodePDF(msg.PDFBase64)
	if err != nil {
		return "", err
	}

	id := uuid.NewString() + "@" + u.domain
	out := interfaces.OutgoingMail{
		MessageID:      id,
		To:             msg.To,
		Subject:        msg.Subject,
		HTMLBody:       u.composer.QuoteBody(msg),
		AttachmentName: "Orcamento_" + msg.QuoteNumber + ".pdf",
		Attachment:     pdf,
	}
	if err := u.sender.Send(ctx, out); err != nil {
		log.Error().Err(err).Str("component", "mail_relay").Str("quote", msg.QuoteNumber).Msg("send failed")
		return "", fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return id, nil
}

// decodePDF accepts plain base64 or a data URI.
func decodePDF(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "data:") {
		if i := strings.Index(raw, ","); i >= 0 {
			raw = raw[i+1:]
		}
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(b) == 0 {
		return nil, ErrInvalidPDF
	}
	return b, nil
}
