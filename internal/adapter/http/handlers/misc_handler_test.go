package handlers

import (
	"fmt"
	"gestao_comercial/internal/adapter/http/handlers/mocks"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/internal/usecase/interfaces"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestCostCenterHandler_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICostCenterUseCase(ctrl)
	h := NewCostCenterHandler(uc)

	r := newTestRouter()
	r.PATCH("/v1/cost-centers/:id/active", h.SetCostCenterActive)

	if w := serve(r, http.MethodPatch, "/v1/cost-centers/CC-SOLAR/active", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without ativo, got %d", w.Code)
	}

	uc.EXPECT().SetActive(gomock.Any(), testSession, "CC-SOLAR", false).
		Return(entities.CostCenter{ID: "CC-SOLAR", Active: false}, nil)
	if w := serve(r, http.MethodPatch, "/v1/cost-centers/CC-SOLAR/active", `{"ativo":false}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReceivableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReceivableUseCase(ctrl)
	h := NewReceivableHandler(uc)

	r := newTestRouter()
	r.GET("/v1/receivables", h.ListReceivables)
	r.PATCH("/v1/receivables/:id/settle", h.SettleReceivable)

	if w := serve(r, http.MethodGet, "/v1/receivables?status=pago", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), testSession, usecase.ReceivableFilter{Month: "2026-01", Status: entities.ReceivableStatusPendente}).Return(nil, nil)
	if w := serve(r, http.MethodGet, "/v1/receivables?mes=2026-01&status=pendente", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Settle(gomock.Any(), testSession, "r-1").Return(entities.Receivable{}, usecase.ErrReceivableNotPending)
	if w := serve(r, http.MethodPatch, "/v1/receivables/r-1/settle", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestTicketHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITicketUseCase(ctrl)
	h := NewTicketHandler(uc)

	r := newTestRouter()
	r.POST("/v1/tickets", h.CreateTicket)
	r.PATCH("/v1/tickets/:id/status", h.ChangeTicketStatus)

	uc.EXPECT().Create(gomock.Any(), testSession, usecase.TicketInput{ClientID: "cli-1", Description: "Bomba parada"}).
		Return(entities.Ticket{ID: "t-1", Number: "CHM-260100001", Status: entities.TicketStatusAberto}, nil)
	if w := serve(r, http.MethodPost, "/v1/tickets", `{"clienteId":"cli-1","descricao":"Bomba parada"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().ChangeStatus(gomock.Any(), testSession, "t-1", entities.TicketStatusAberto, "").
		Return(entities.Ticket{}, usecase.ErrInvalidTicketTransition)
	if w := serve(r, http.MethodPatch, "/v1/tickets/t-1/status", `{"status":"aberto"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestCatalogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := newTestRouter()
	r.POST("/v1/products", h.CreateProduct)
	r.GET("/v1/banks/:id", h.GetBank)

	uc.EXPECT().CreateProduct(gomock.Any(), testSession, gomock.Any()).Return(entities.Product{}, usecase.ErrInvalidProductPrice)
	if w := serve(r, http.MethodPost, "/v1/products", `{"nome":"Bomba","valorUnitario":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().GetBank(gomock.Any(), testSession, "b-1").Return(entities.Bank{}, usecase.ErrBankNotFound)
	if w := serve(r, http.MethodGet, "/v1/banks/b-1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSaleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISaleUseCase(ctrl)
	h := NewSaleHandler(uc)

	r := newTestRouter()
	r.GET("/v1/sales", h.ListSales)
	r.GET("/v1/sales/:id", h.GetSale)

	if w := serve(r, http.MethodGet, "/v1/sales?status=aberta", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), testSession, entities.SaleStatusPendenteFaturamento).Return([]entities.Sale{{ID: "s-1"}}, nil)
	if w := serve(r, http.MethodGet, "/v1/sales?status=pendente_faturamento", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), testSession, "s-9").Return(entities.Sale{}, usecase.ErrSaleNotFound)
	if w := serve(r, http.MethodGet, "/v1/sales/s-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMapCommonError_LockContention(t *testing.T) {
	appErr := mapInvoiceError(fmt.Errorf("lock invoice-number:emp-1:2026-01: %w", interfaces.ErrLockNotObtained))
	if appErr.HTTPStatus != http.StatusConflict || appErr.Code != "RESOURCE_BUSY" {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
