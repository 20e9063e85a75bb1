package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusPendenteFaturamento SaleStatus = "pendente_faturamento"
	SaleStatusFaturado            SaleStatus = "faturado"
	SaleStatusCancelada           SaleStatus = "cancelada"
)

var saleTransitions = map[SaleStatus][]SaleStatus{
	SaleStatusPendenteFaturamento: {SaleStatusFaturado, SaleStatusCancelada},
	SaleStatusFaturado:            {SaleStatusPendenteFaturamento},
	SaleStatusCancelada:           {},
}

func (s SaleStatus) Valid() bool {
	_, ok := saleTransitions[s]
	return ok
}

func (s SaleStatus) CanTransitionTo(next SaleStatus) bool {
	return contains(saleTransitions[s], next)
}

// Sale (venda) is created once per approved quote.
type Sale struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	QuoteID     string          `json:"orcamentoId"`
	QuoteNumber string          `json:"orcamentoNumero"`
	QuoteKind   QuoteKind       `json:"orcamentoTipo"`
	Client      ClientSnapshot  `json:"cliente"`
	Items       []QuoteItem     `json:"itens"`
	Payment     PaymentTerms    `json:"pagamento"`
	Total       decimal.Decimal `json:"valorTotal"`
	Status      SaleStatus      `json:"status"`
	InvoiceID   string          `json:"boletoId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BillableByInvoice reports whether the sale shows up in invoice generation.
func (s Sale) BillableByInvoice() bool {
	return s.Status == SaleStatusPendenteFaturamento && s.Payment.Method == PaymentBoleto
}
