package handlers

import (
	"encoding/json"
	"gestao_comercial/internal/adapter/http/handlers/mocks"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"gestao_comercial/pkg"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.POST("/v1/clients", h.CreateClient)

		w := serve(r, http.MethodPost, "/v1/clients", `{"documento":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Fields["name"]) == 0 {
			t.Fatalf("expected a problem for field name, got %+v", body.Fields)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().
			Create(gomock.Any(), testSession, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Session, in usecase.ClientInput) (entities.Client, error) {
				if in.Name != "Condomínio Solar" || in.Address.State != "SP" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Client{ID: "cli-1", Name: in.Name, CostCenterID: "CC-CONDOMINIO-SOLAR"}, nil
			})

		w := serve(r, http.MethodPost, "/v1/clients", `{"nome":"Condomínio Solar","endereco":{"uf":"sp"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got entities.Client
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.ID != "cli-1" || got.CostCenterID != "CC-CONDOMINIO-SOLAR" {
			t.Fatalf("unexpected client: %+v", got)
		}
	})
}

func TestClientHandler_GetClient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrClientNotFound, http.StatusNotFound},
		{"no company in session", usecase.ErrInvalidSession, http.StatusUnauthorized},
		{"store failure", errTest, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIClientUseCase(ctrl)
			h := NewClientHandler(uc)

			r := newTestRouter()
			r.GET("/v1/clients/:id", h.GetClient)

			uc.EXPECT().GetByID(gomock.Any(), testSession, "cli-9").Return(entities.Client{}, tc.err)

			w := serve(r, http.MethodGet, "/v1/clients/cli-9", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestClientHandler_Contacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := newTestRouter()
	r.POST("/v1/clients/:id/contacts", h.AddContact)
	r.PATCH("/v1/clients/:id/contacts/:contactId/primary", h.SetPrimaryContact)

	w := serve(r, http.MethodPost, "/v1/clients/cli-1/contacts", `{"nome":"Rita","email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", w.Code)
	}

	uc.EXPECT().
		AddContact(gomock.Any(), testSession, "cli-1", usecase.ContactInput{Name: "Rita", Email: "rita@solar.com", Primary: true}).
		Return(entities.Contact{ID: "ct-1", ClientID: "cli-1", Name: "Rita", Primary: true}, nil)
	w = serve(r, http.MethodPost, "/v1/clients/cli-1/contacts", `{"nome":"Rita","email":"rita@solar.com","principal":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().SetPrimaryContact(gomock.Any(), testSession, "cli-1", "ct-x").Return(entities.Client{}, usecase.ErrContactNotFound)
	w = serve(r, http.MethodPatch, "/v1/clients/cli-1/contacts/ct-x/primary", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
