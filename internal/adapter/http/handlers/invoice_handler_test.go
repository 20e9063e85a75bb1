package handlers

import (
	"encoding/json"
	"fmt"
	response "gestao_comercial/internal/adapter/http/dto/response"
	"gestao_comercial/internal/adapter/http/handlers/mocks"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := newTestRouter()
	g := r.Group("/v1/invoices")
	g.GET("/candidates", h.ListCandidates)
	g.POST("/generate", h.GenerateInvoices)
	g.GET("/export", h.ExportInvoices)
	g.GET("", h.ListInvoices)
	g.DELETE("/:id", h.DeleteInvoice)
	g.PATCH("/:id/status", h.ChangeInvoiceStatus)
	g.POST("/:id/register", h.RegisterInvoice)
	return r, uc
}

func TestInvoiceHandler_ListCandidates(t *testing.T) {
	t.Run("month is required", func(t *testing.T) {
		r, _ := newInvoiceRouter(t)

		for _, path := range []string{"/v1/invoices/candidates", "/v1/invoices/candidates?mes=2026-1"} {
			w := serve(r, http.MethodGet, path, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)

		uc.EXPECT().ListCandidates(gomock.Any(), testSession, "2026-01").Return([]usecase.InvoiceCandidate{{
			Origin:     entities.InvoiceOriginContract,
			ContractID: "c-1",
			ClientName: "Residencial Ipê",
			Amount:     decimal.NewFromInt(300),
			DueDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local),
		}}, nil)

		w := serve(r, http.MethodGet, "/v1/invoices/candidates?mes=2026-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []response.InvoiceCandidateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(got) != 1 || got[0].ID != "c-1" || got[0].DueDate != "2026-01-10" {
			t.Fatalf("unexpected candidates: %+v", got)
		}
	})
}

func TestInvoiceHandler_GenerateInvoices(t *testing.T) {
	body := `{"mes":"2026-01","itens":[{"origem":"contrato","id":"c-1"},{"origem":"venda","id":"s-1"}]}`
	items := []usecase.GenerationItem{
		{Origin: entities.InvoiceOriginContract, ID: "c-1"},
		{Origin: entities.InvoiceOriginSale, ID: "s-1"},
	}

	t.Run("empty selection", func(t *testing.T) {
		r, _ := newInvoiceRouter(t)

		w := serve(r, http.MethodPost, "/v1/invoices/generate", `{"mes":"2026-01","itens":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("all generated", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)

		uc.EXPECT().Generate(gomock.Any(), testSession, "2026-01", items).Return(usecase.GenerationResult{
			Month:    "2026-01",
			Invoices: []entities.Invoice{{Number: "BOL-260100001"}, {Number: "BOL-260100002"}},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/generate", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got response.GenerationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.Count != 2 || got.Invoices[1].Number != "BOL-260100002" || got.Error != "" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("stops on first failure and reports what was generated", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)

		stop := fmt.Errorf("item 2: %w", usecase.ErrSaleNotFound)
		uc.EXPECT().Generate(gomock.Any(), testSession, "2026-01", items).Return(usecase.GenerationResult{
			Month:    "2026-01",
			Invoices: []entities.Invoice{{Number: "BOL-260100001"}},
		}, stop)

		w := serve(r, http.MethodPost, "/v1/invoices/generate", body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var got response.GenerationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.Count != 1 || got.Error == "" {
			t.Fatalf("unexpected partial result: %+v", got)
		}
	})

	t.Run("nothing generated", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)

		uc.EXPECT().Generate(gomock.Any(), testSession, "2026-01", items).
			Return(usecase.GenerationResult{Month: "2026-01"}, fmt.Errorf("item 1: %w", usecase.ErrItemNotEligible))

		w := serve(r, http.MethodPost, "/v1/invoices/generate", body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_StatusAndDelete(t *testing.T) {
	r, uc := newInvoiceRouter(t)

	uc.EXPECT().Delete(gomock.Any(), testSession, "inv-1").Return(usecase.ErrInvoiceNotDeletable)
	if w := serve(r, http.MethodDelete, "/v1/invoices/inv-1", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), testSession, "inv-2").Return(nil)
	if w := serve(r, http.MethodDelete, "/v1/invoices/inv-2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	uc.EXPECT().ChangeStatus(gomock.Any(), testSession, "inv-3", entities.InvoiceStatusPago).
		Return(entities.Invoice{ID: "inv-3", Status: entities.InvoiceStatusPago}, nil)
	if w := serve(r, http.MethodPatch, "/v1/invoices/inv-3/status", `{"status":"pago"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().RegisterWithBank(gomock.Any(), testSession, "inv-4").Return(entities.Invoice{}, usecase.ErrBankGatewayNotConfigured)
	if w := serve(r, http.MethodPost, "/v1/invoices/inv-4/register", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestInvoiceHandler_ExportInvoices(t *testing.T) {
	r, uc := newInvoiceRouter(t)

	uc.EXPECT().ExportXLSX(gomock.Any(), testSession, "2026-01", gomock.Any()).
		DoAndReturn(func(_ any, _ entities.Session, _ string, w io.Writer) error {
			_, err := w.Write([]byte("PK"))
			return err
		})

	w := serve(r, http.MethodGet, "/v1/invoices/export?mes=2026-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != xlsxContentType || w.Body.String() != "PK" {
		t.Fatalf("unexpected export %q %q", w.Header().Get("Content-Type"), w.Body.String())
	}
}
