package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceivableStatus string

const (
	ReceivableStatusPendente  ReceivableStatus = "pendente"
	ReceivableStatusRecebido  ReceivableStatus = "recebido"
	ReceivableStatusCancelado ReceivableStatus = "cancelado"
)

var receivableTransitions = map[ReceivableStatus][]ReceivableStatus{
	ReceivableStatusPendente:  {ReceivableStatusRecebido, ReceivableStatusCancelado},
	ReceivableStatusRecebido:  {},
	ReceivableStatusCancelado: {},
}

func (s ReceivableStatus) Valid() bool {
	_, ok := receivableTransitions[s]
	return ok
}

func (s ReceivableStatus) CanTransitionTo(next ReceivableStatus) bool {
	return contains(receivableTransitions[s], next)
}

// Receivable (conta a receber) paired with an invoice through InvoiceID.
type Receivable struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"companyId"`
	InvoiceID      string           `json:"boletoId,omitempty"`
	SaleID         string           `json:"vendaId,omitempty"`
	ContractID     string           `json:"contratoId,omitempty"`
	ClientID       string           `json:"clienteId"`
	ClientName     string           `json:"clienteNome"`
	Description    string           `json:"descricao"`
	Amount         decimal.Decimal  `json:"valor"`
	DueDate        *time.Time       `json:"dataVencimento,omitempty"`
	Status         ReceivableStatus `json:"status"`
	CostCenterID   string           `json:"centroCustoId,omitempty"`
	ReferenceMonth string           `json:"mesReferencia,omitempty"`
	ReceivedAt     *time.Time       `json:"dataRecebimento,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
