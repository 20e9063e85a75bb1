package handlers

import (
	"gestao_comercial/internal/adapter/http/handlers/mocks"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestContractHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIContractUseCase(ctrl)
	h := NewContractHandler(uc)

	r := newTestRouter()
	g := r.Group("/v1/contracts")
	g.POST("", h.CreateContract)
	g.GET("", h.ListContracts)
	g.PATCH("/:id/status", h.ChangeContractStatus)
	g.PATCH("/:id/situacao", h.ChangeContractSituation)

	t.Run("billing day out of range", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/contracts", `{"clienteId":"cli-1","diaVencimento":32,"valorMensal":300}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list by client", func(t *testing.T) {
		uc.EXPECT().ListByClient(gomock.Any(), testSession, "cli-1").Return([]entities.Contract{{ID: "c-1"}}, nil)

		w := serve(r, http.MethodGet, "/v1/contracts?clienteId=cli-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list all", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testSession).Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/contracts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status transition refused", func(t *testing.T) {
		uc.EXPECT().ChangeStatus(gomock.Any(), testSession, "c-1", entities.ContractStatusEmElaboracao).
			Return(entities.Contract{}, usecase.ErrInvalidContractTransition)

		w := serve(r, http.MethodPatch, "/v1/contracts/c-1/status", `{"status":"em_elaboracao"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("situacao", func(t *testing.T) {
		uc.EXPECT().ChangeSituacao(gomock.Any(), testSession, "c-1", entities.ContractSituationSuspenso).
			Return(entities.Contract{ID: "c-1", Situation: entities.ContractSituationSuspenso}, nil)

		w := serve(r, http.MethodPatch, "/v1/contracts/c-1/situacao", `{"situacao":"suspenso"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
