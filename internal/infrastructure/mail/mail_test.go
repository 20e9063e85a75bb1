package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"gestao_comercial/internal/usecase/interfaces"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestRelayClient_SendQuote(t *testing.T) {
	t.Run("success returns message id", func(t *testing.T) {
		var got interfaces.QuoteEmail
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, sendQuotePath, r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"success":true,"messageId":"abc-123"}`))
		}))
		defer srv.Close()

		id, err := NewRelayClient(srv.URL+"/", nil).SendQuote(context.Background(), interfaces.QuoteEmail{
			To: "ana@solar.com", Subject: "Orçamento", QuoteNumber: "ORC-240300001", PDFBase64: "JVBERi0=",
		})
		require.NoError(t, err)
		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "ORC-240300001", got.QuoteNumber)
	})

	t.Run("relay error is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"535 auth failed"}`))
		}))
		defer srv.Close()

		_, err := NewRelayClient(srv.URL, nil).SendQuote(context.Background(), interfaces.QuoteEmail{To: "x@y.com"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRelayRejected))
		assert.Contains(t, err.Error(), "535 auth failed")
	})
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPSender_Send(t *testing.T) {
	d := &fakeDialer{}
	s := &SMTPSender{from: "comercial@empresa.com", dialer: d}

	err := s.Send(context.Background(), interfaces.OutgoingMail{
		MessageID:      "id-1@gestao",
		To:             "ana@solar.com",
		Subject:        "Orçamento ORC-240300001",
		HTMLBody:       "<p>oi</p>",
		AttachmentName: "ORC-240300001.pdf",
		Attachment:     []byte("%PDF-1.3"),
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"ana@solar.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"<id-1@gestao>"}, m.GetHeader("Message-ID"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ORC-240300001.pdf")

	d.err = errors.New("connection refused")
	err = s.Send(context.Background(), interfaces.OutgoingMail{To: "ana@solar.com"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestQuoteBody(t *testing.T) {
	body := QuoteBody("Cond. <Solar>", "ORC-240300001", "R$ 300,50", "https://app/aprovar?id=1&t=2")
	assert.Contains(t, body, "Cond. &lt;Solar&gt;")
	assert.Contains(t, body, "R$ 300,50")
	assert.Contains(t, body, `href="https://app/aprovar?id=1&amp;t=2"`)

	assert.NotContains(t, QuoteBody("A", "B", "C", ""), "aprovar")
}
