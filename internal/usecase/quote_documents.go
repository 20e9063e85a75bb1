package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/money"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidRecipient   = errors.New("quote email needs a recipient")
	ErrMailNotConfigured  = errors.New("mail relay not configured")
	ErrRendererMissing    = errors.New("document renderer not configured")
	ErrMailRelayFailed    = errors.New("mail relay failed")
	ErrDocumentRenderFail = errors.New("document rendering failed")
)

type EmailInput struct {
	To           string
	Subject      string
	ApprovalLink string
}

type EmailResult struct {
	MessageID  string
	ArchiveURL string
	Quote      entities.Quote
}

func (u *QuoteUseCase) RenderHTML(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (string, error) {
	if u.Renderer == nil {
		return "", ErrRendererMissing
	}
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return "", err
	}
	html, err := u.Renderer.QuoteHTML(q)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRenderFail, err)
	}
	return html, nil
}

func (u *QuoteUseCase) RenderPDF(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) ([]byte, entities.Quote, error) {
	if u.Renderer == nil {
		return nil, entities.Quote{}, ErrRendererMissing
	}
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return nil, entities.Quote{}, err
	}
	pdf, err := u.Renderer.QuotePDF(q)
	if err != nil {
		return nil, entities.Quote{}, fmt.Errorf("%w: %v", ErrDocumentRenderFail, err)
	}
	return pdf, q, nil
}

// SendByEmail renders the PDF, archives it when storage is configured, hands
// it to the mail relay and moves a draft quote to enviado.
func (u *QuoteUseCase) SendByEmail(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string, in EmailInput) (EmailResult, error) {
	if u.MailRelay == nil {
		return EmailResult{}, ErrMailNotConfigured
	}
	pdf, q, err := u.RenderPDF(ctx, s, kind, id)
	if err != nil {
		return EmailResult{}, err
	}

	to := strings.TrimSpace(in.To)
	if to == "" {
		to = q.Client.Contact.Email
	}
	if to == "" {
		return EmailResult{}, ErrInvalidRecipient
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = "Orçamento " + q.Number
	}

	res := EmailResult{Quote: q}
	if u.Archive != nil {
		key := fmt.Sprintf("orcamentos/%s/%s.pdf", s.CompanyID, q.Number)
		if res.ArchiveURL, err = u.Archive.Upload(ctx, key, pdf, "application/pdf"); err != nil {
			log.Warn().Err(err).Str("component", "quote").Str("quote_id", q.ID).Msg("pdf archive failed")
		}
	}

	res.MessageID, err = u.MailRelay.SendQuote(ctx, interfaces.QuoteEmail{
		To:           to,
		Subject:      subject,
		ClientName:   q.Client.Name,
		QuoteNumber:  q.Number,
		TotalValue:   money.FormatBRL(q.Total),
		PDFBase64:    base64.StdEncoding.EncodeToString(pdf),
		ApprovalLink: strings.TrimSpace(in.ApprovalLink),
	})
	if err != nil {
		return EmailResult{}, fmt.Errorf("%w: %v", ErrMailRelayFailed, err)
	}
	log.Info().Str("component", "quote").Str("quote_id", q.ID).Str("message_id", res.MessageID).Msg("quote emailed")

	if q.Status == entities.QuoteStatusEmElaboracao {
		sent, err := u.markSent(ctx, s, q, "email para "+to)
		if err != nil {
			return EmailResult{}, err
		}
		res.Quote = sent
	}
	return res, nil
}
