package handlers

import (
	"encoding/json"
	"fmt"
	"gestao_comercial/internal/adapter/http/handlers/mocks"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/internal/usecase/interfaces"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRelayRouter(t *testing.T) (*gin.Engine, *mocks.MockIMailRelayUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIMailRelayUseCase(ctrl)
	h := NewMailRelayHandler(uc)

	r := gin.New()
	r.GET("/", h.Health)
	r.POST("/api/send-orcamento", h.SendQuote)
	return r, uc
}

const relayBody = `{"to":"compras@solar.com","subject":"Orçamento","clienteNome":"Condomínio Solar",` +
	`"numeroOrcamento":"ORC-260100001","valorTotal":"R$ 500,50","pdfBase64":"JVBERi0xLjM="}`

func TestMailRelayHandler_SendQuote(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		r, uc := newRelayRouter(t)

		uc.EXPECT().SendQuote(gomock.Any(), interfaces.QuoteEmail{
			To:          "compras@solar.com",
			Subject:     "Orçamento",
			ClientName:  "Condomínio Solar",
			QuoteNumber: "ORC-260100001",
			TotalValue:  "R$ 500,50",
			PDFBase64:   "JVBERi0xLjM=",
		}).Return("abc@gestao-comercial", nil)

		w := serve(r, http.MethodPost, "/api/send-orcamento", relayBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["success"] != true || got["messageId"] != "abc@gestao-comercial" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		r, uc := newRelayRouter(t)

		uc.EXPECT().SendQuote(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: pdfBase64", usecase.ErrMissingRelayField))

		w := serve(r, http.MethodPost, "/api/send-orcamento", `{"to":"compras@solar.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["success"] != false || got["message"] != "missing required field: pdfBase64" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("smtp failure", func(t *testing.T) {
		r, uc := newRelayRouter(t)

		uc.EXPECT().SendQuote(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: 535 authentication failed", usecase.ErrMailDelivery))

		w := serve(r, http.MethodPost, "/api/send-orcamento", relayBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["success"] != false || got["error"] == nil {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newRelayRouter(t)

		w := serve(r, http.MethodPost, "/api/send-orcamento", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMailRelayHandler_Health(t *testing.T) {
	r, _ := newRelayRouter(t)

	w := serve(r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || w.Body.String() == "" {
		t.Fatalf("unexpected health response %d %q", w.Code, w.Body.String())
	}
}
