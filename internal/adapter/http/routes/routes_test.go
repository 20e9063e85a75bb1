package routes

import (
	"bytes"
	"encoding/json"
	request "gestao_comercial/internal/adapter/http/dto/request"
	response "gestao_comercial/internal/adapter/http/dto/response"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/infrastructure/lock"
	"gestao_comercial/pkg/jwt"
	"gestao_comercial/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterValidators())

	h := newHandlers(memoryRepositories(), adapters{locker: lock.NewLocalLocker()})
	router := NewRouter(h, testSecret, logger.New(logger.Config{Env: "test", Level: "error"}))

	token, err := jwt.Generate(testSecret, "test", "user-1", "Ana Souza", "emp-1", time.Hour)
	require.NoError(t, err)
	return &apiClient{t: t, router: router, token: token}
}

func (a *apiClient) do(method, path string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRouter_PublicAndProtected(t *testing.T) {
	api := newAPI(t)

	token := api.token
	api.token = ""
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/ping", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/clients", nil, nil))

	api.token = token
	var clients []entities.Client
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/clients", nil, &clients))
	assert.Empty(t, clients)
}

// From client registration to a generated boleto over the in-memory store.
func TestRouter_SaleToInvoiceFlow(t *testing.T) {
	api := newAPI(t)

	var client entities.Client
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/clients", map[string]any{
		"nome": "Residencial Ipê",
	}, &client))
	assert.Equal(t, "CC-RESIDENCIAL-IPE", client.CostCenterID)

	var quote entities.Quote
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/quotes/equipamentos", map[string]any{
		"clienteId": client.ID,
		"itens": []map[string]any{
			{"tipo": "produto", "descricao": "Motor de portão", "quantidade": 2, "valorUnitario": "150.25"},
			{"tipo": "servico", "descricao": "Instalação", "quantidade": 1, "valorUnitario": 200},
		},
		"pagamento": map[string]any{"forma": "boleto", "dataVencimento": "2026-01-20"},
	}, &quote))
	assert.Equal(t, entities.QuoteStatusEmElaboracao, quote.Status)
	assert.Equal(t, "500.5", quote.Total.String())

	var approval response.ApprovalResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, "/v1/quotes/equipamentos/"+quote.ID+"/approve", nil, &approval))
	assert.Equal(t, entities.QuoteStatusAprovado, approval.Quote.Status)
	assert.Equal(t, entities.SaleStatusPendenteFaturamento, approval.Sale.Status)

	assert.Equal(t, http.StatusConflict, api.do(http.MethodPatch, "/v1/quotes/equipamentos/"+quote.ID+"/approve", nil, nil))

	var candidates []response.InvoiceCandidateResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/invoices/candidates?mes=2026-01", nil, &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, approval.Sale.ID, candidates[0].ID)
	assert.Equal(t, "2026-01-20", candidates[0].DueDate)

	var generated response.GenerationResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/invoices/generate", map[string]any{
		"mes":   "2026-01",
		"itens": []map[string]any{{"origem": "venda", "id": approval.Sale.ID}},
	}, &generated))
	require.Len(t, generated.Invoices, 1)
	assert.Equal(t, "BOL-260100001", generated.Invoices[0].Number)
	assert.Equal(t, "CC-RESIDENCIAL-IPE", generated.Invoices[0].CostCenterID)

	var receivables []entities.Receivable
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/receivables?mes=2026-01", nil, &receivables))
	require.Len(t, receivables, 1)
	assert.Equal(t, generated.Invoices[0].ID, receivables[0].InvoiceID)
	assert.Equal(t, entities.ReceivableStatusPendente, receivables[0].Status)

	candidates = nil
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/invoices/candidates?mes=2026-01", nil, &candidates))
	assert.Empty(t, candidates)
}

func TestRouter_FeaturesWithoutAdapters(t *testing.T) {
	api := newAPI(t)

	assert.Equal(t, http.StatusServiceUnavailable, api.do(http.MethodGet, "/v1/invoices/export?mes=2026-01", nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/v1/quotes/avulsos", nil, nil))
}
