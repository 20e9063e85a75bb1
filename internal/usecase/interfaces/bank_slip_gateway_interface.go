package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// BoletoRequest is what the bank needs to register a payment slip.
type BoletoRequest struct {
	ExternalReference string
	Description       string
	Amount            decimal.Decimal
	DueDate           time.Time
	PayerName         string
	PayerEmail        string
	PayerDocument     string
	PayerAddress      entities.Address
}

// IBankSlipGateway abstracts the provider that registers boletos (Mercado Pago).
type IBankSlipGateway interface {
	RegisterBoleto(ctx context.Context, req BoletoRequest) (entities.BankRegistration, error)
}
