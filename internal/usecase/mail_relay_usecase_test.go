package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/usecase/interfaces"
	mock_interfaces "gestao_comercial/internal/usecase/interfaces/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRelayPayload() interfaces.QuoteEmail {
	return interfaces.QuoteEmail{
		To:          "ana@solar.com",
		Subject:     "Orçamento ORC-260100001",
		ClientName:  "Condomínio Solar",
		QuoteNumber: "ORC-260100001",
		TotalValue:  "R$ 500,50",
		PDFBase64:   "JVBERi0xLjM=",
	}
}

func TestMailRelayUseCase_SendQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers with attachment and generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_interfaces.NewMockIMailSender(ctrl)
		composer := mock_interfaces.NewMockIMailComposer(ctrl)
		composer.EXPECT().QuoteBody(gomock.Any()).Return("<p>body</p>")

		var sent interfaces.OutgoingMail
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m interfaces.OutgoingMail) error {
			sent = m
			return nil
		})

		msg := validRelayPayload()
		msg.PDFBase64 = "data:application/pdf;base64," + msg.PDFBase64
		id, err := NewMailRelayUseCase(sender, composer, "relay.test").SendQuote(ctx, msg)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(id, "@relay.test"))
		assert.Equal(t, id, sent.MessageID)
		assert.Equal(t, "Orcamento_ORC-260100001.pdf", sent.AttachmentName)
		assert.Equal(t, []byte("%PDF-1.3"), sent.Attachment)
		assert.Equal(t, "<p>body</p>", sent.HTMLBody)
	})

	t.Run("invalid payloads never reach the transport", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewMailRelayUseCase(mock_interfaces.NewMockIMailSender(ctrl), mock_interfaces.NewMockIMailComposer(ctrl), "")

		missing := validRelayPayload()
		missing.QuoteNumber = " "
		_, err := uc.SendQuote(ctx, missing)
		assert.ErrorIs(t, err, ErrMissingRelayField)
		assert.Contains(t, err.Error(), "numeroOrcamento")

		badTo := validRelayPayload()
		badTo.To = "not-an-address"
		_, err = uc.SendQuote(ctx, badTo)
		assert.ErrorIs(t, err, ErrInvalidRecipient)

		badPDF := validRelayPayload()
		badPDF.PDFBase64 = "***"
		_, err = uc.SendQuote(ctx, badPDF)
		assert.ErrorIs(t, err, ErrInvalidPDF)
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_interfaces.NewMockIMailSender(ctrl)
		composer := mock_interfaces.NewMockIMailComposer(ctrl)
		composer.EXPECT().QuoteBody(gomock.Any()).Return("")
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("535 authentication failed"))

		_, err := NewMailRelayUseCase(sender, composer, "").SendQuote(ctx, validRelayPayload())
		assert.ErrorIs(t, err, ErrMailDelivery)
		assert.Contains(t, err.Error(), "535 authentication failed")
	})
}
