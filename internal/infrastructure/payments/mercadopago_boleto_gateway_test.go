package payments

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestRegisterBoleto_Mock(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)

	reg, err := g.RegisterBoleto(context.Background(), interfaces.BoletoRequest{ExternalReference: "BOL-260100001"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.GatewayID)
	assert.Equal(t, "pending", reg.Status)
}

func TestRegisterBoleto_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.RegisterBoleto(context.Background(), interfaces.BoletoRequest{})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestBoletoPayload(t *testing.T) {
	p := boletoPayload(interfaces.BoletoRequest{
		ExternalReference: "BOL-260100001",
		Description:       "Contrato CTR-260100001",
		Amount:            decimal.RequireFromString("199.905"),
		DueDate:           time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		PayerName:         "Maria da Silva",
		PayerDocument:     "12.345.678/0001-90",
		PayerAddress:      entities.Address{ZipCode: "01310-100", State: "SP"},
	})

	assert.Equal(t, BoletoPaymentMethod, p["payment_method_id"])
	assert.Equal(t, 199.91, p["transaction_amount"])
	assert.Equal(t, "2026-01-10T23:59:59Z", p["date_of_expiration"])

	payer := p["payer"].(map[string]any)
	assert.Equal(t, "Maria", payer["first_name"])
	assert.Equal(t, "da Silva", payer["last_name"])
	ident := payer["identification"].(map[string]any)
	assert.Equal(t, "CNPJ", ident["type"])
	assert.Equal(t, "12345678000190", ident["number"])
	addr := payer["address"].(map[string]any)
	assert.Equal(t, "01310100", addr["zip_code"])
}
