package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	mock_interfaces "gestao_comercial/internal/usecase/interfaces/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_SendByEmail(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, entities.Quote, *mock_interfaces.MockIDocumentRenderer, *mock_interfaces.MockIMailRelayClient, *mock_interfaces.MockIDocumentArchive) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		_, err := f.clients.AddContact(ctx, testSession, c.ID, ContactInput{Name: "Ana", Email: "ana@solar.com"})
		require.NoError(t, err)
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		relay := mock_interfaces.NewMockIMailRelayClient(ctrl)
		archive := mock_interfaces.NewMockIDocumentArchive(ctrl)
		f.quotes.Renderer = renderer
		f.quotes.MailRelay = relay
		f.quotes.Archive = archive
		return f, q, renderer, relay, archive
	}

	t.Run("archives, relays and marks the quote sent", func(t *testing.T) {
		f, q, renderer, relay, archive := setup(t)
		renderer.EXPECT().QuotePDF(gomock.Any()).Return([]byte("%PDF-1.3"), nil)
		archive.EXPECT().Upload(gomock.Any(), "orcamentos/emp-1/"+q.Number+".pdf", []byte("%PDF-1.3"), "application/pdf").
			Return("s3://docs/orcamentos/emp-1/"+q.Number+".pdf", nil)

		var got interfaces.QuoteEmail
		relay.EXPECT().SendQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m interfaces.QuoteEmail) (string, error) {
			got = m
			return "msg-1", nil
		})

		res, err := f.quotes.SendByEmail(ctx, testSession, entities.QuoteKindEquipment, q.ID, EmailInput{})
		require.NoError(t, err)
		assert.Equal(t, "msg-1", res.MessageID)
		assert.Contains(t, res.ArchiveURL, q.Number)
		assert.Equal(t, entities.QuoteStatusEnviado, res.Quote.Status)

		assert.Equal(t, "ana@solar.com", got.To)
		assert.Equal(t, "Orçamento "+q.Number, got.Subject)
		assert.Equal(t, "R$ 500,50", got.TotalValue)
		assert.Equal(t, "JVBERi0xLjM=", got.PDFBase64)

		stored, err := f.quoteRepo.GetByID(ctx, testSession.CompanyID, entities.QuoteKindEquipment, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusEnviado, stored.Status)
	})

	t.Run("relay failure leaves the quote in draft", func(t *testing.T) {
		f, q, renderer, relay, archive := setup(t)
		renderer.EXPECT().QuotePDF(gomock.Any()).Return([]byte("%PDF"), nil)
		archive.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))
		relay.EXPECT().SendQuote(gomock.Any(), gomock.Any()).Return("", errors.New("smtp timeout"))

		_, err := f.quotes.SendByEmail(ctx, testSession, entities.QuoteKindEquipment, q.ID, EmailInput{To: "outro@solar.com"})
		assert.ErrorIs(t, err, ErrMailRelayFailed)

		stored, err := f.quoteRepo.GetByID(ctx, testSession.CompanyID, entities.QuoteKindEquipment, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusEmElaboracao, stored.Status)
	})

	t.Run("not configured", func(t *testing.T) {
		f, q, _, _, _ := setup(t)
		f.quotes.MailRelay = nil
		_, err := f.quotes.SendByEmail(ctx, testSession, entities.QuoteKindEquipment, q.ID, EmailInput{})
		assert.ErrorIs(t, err, ErrMailNotConfigured)
	})
}
