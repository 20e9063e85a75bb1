package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPendente     InvoiceStatus = "pendente"
	InvoiceStatusEnviadoBanco InvoiceStatus = "enviado_banco"
	InvoiceStatusPago         InvoiceStatus = "pago"
	InvoiceStatusAtrasado     InvoiceStatus = "atrasado"
	InvoiceStatusCancelado    InvoiceStatus = "cancelado"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPendente:     {InvoiceStatusEnviadoBanco, InvoiceStatusPago, InvoiceStatusAtrasado, InvoiceStatusCancelado},
	InvoiceStatusEnviadoBanco: {InvoiceStatusPago, InvoiceStatusAtrasado, InvoiceStatusCancelado},
	InvoiceStatusAtrasado:     {InvoiceStatusPago, InvoiceStatusCancelado},
	InvoiceStatusPago:         {},
	InvoiceStatusCancelado:    {},
}

func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceTransitions[s]
	return ok
}

func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	return contains(invoiceTransitions[s], next)
}

type InvoiceOrigin string

const (
	InvoiceOriginContract InvoiceOrigin = "contrato"
	InvoiceOriginSale     InvoiceOrigin = "venda"
)

// BankRegistration holds what the bank/gateway returned for a registered slip.
type BankRegistration struct {
	GatewayID    string    `json:"gatewayId"`
	Barcode      string    `json:"linhaDigitavel,omitempty"`
	TicketURL    string    `json:"url,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registradoEm"`
}

// Invoice (boleto), numbered BOL-YYMM##### per reference month.
type Invoice struct {
	ID             string            `json:"id"`
	CompanyID      string            `json:"companyId"`
	Number         string            `json:"numero"`
	ReferenceMonth string            `json:"mesReferencia"`
	Origin         InvoiceOrigin     `json:"origem"`
	ContractID     string            `json:"contratoId,omitempty"`
	SaleID         string            `json:"vendaId,omitempty"`
	Client         ClientSnapshot    `json:"cliente"`
	Description    string            `json:"descricao"`
	Amount         decimal.Decimal   `json:"valor"`
	DueDate        time.Time         `json:"dataVencimento"`
	Status         InvoiceStatus     `json:"status"`
	CostCenterID   string            `json:"centroCustoId,omitempty"`
	BankID         string            `json:"bancoId,omitempty"`
	Registration   *BankRegistration `json:"registroBancario,omitempty"`
	PaidAt         *time.Time        `json:"dataPagamento,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// IsOverdue reports whether an open invoice is past its due date.
// The due date itself is still payable.
func (i Invoice) IsOverdue(now time.Time) bool {
	if i.Status != InvoiceStatusPendente && i.Status != InvoiceStatusEnviadoBanco {
		return false
	}
	y, m, d := i.DueDate.Date()
	endOfDue := time.Date(y, m, d, 23, 59, 59, 0, i.DueDate.Location())
	return now.After(endOfDue)
}
