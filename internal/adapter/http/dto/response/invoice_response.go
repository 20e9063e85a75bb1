package response

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceCandidateResponse struct {
	Origin      string          `json:"origem"`
	ID          string          `json:"id"`
	ClientID    string          `json:"clienteId"`
	ClientName  string          `json:"clienteNome"`
	Description string          `json:"descricao"`
	Amount      decimal.Decimal `json:"valor"`
	DueDate     string          `json:"dataVencimento"`
}

// FromCandidates flattens the contract/sale id into the id the generate
// endpoint expects back.
func FromCandidates(list []usecase.InvoiceCandidate) []InvoiceCandidateResponse {
	out := make([]InvoiceCandidateResponse, 0, len(list))
	for _, c := range list {
		id := c.ContractID
		if c.Origin == entities.InvoiceOriginSale {
			id = c.SaleID
		}
		out = append(out, InvoiceCandidateResponse{
			Origin:      string(c.Origin),
			ID:          id,
			ClientID:    c.ClientID,
			ClientName:  c.ClientName,
			Description: c.Description,
			Amount:      c.Amount,
			DueDate:     c.DueDate.Format(time.DateOnly),
		})
	}
	return out
}

type GenerationResponse struct {
	Month    string             `json:"mes"`
	Count    int                `json:"quantidade"`
	Invoices []entities.Invoice `json:"boletos"`
	// Error is set when generation stopped before the end of the selection.
	Error string `json:"erro,omitempty"`
}

func FromGeneration(r usecase.GenerationResult, err error) GenerationResponse {
	out := GenerationResponse{Month: r.Month, Count: len(r.Invoices), Invoices: r.Invoices}
	if out.Invoices == nil {
		out.Invoices = []entities.Invoice{}
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}
