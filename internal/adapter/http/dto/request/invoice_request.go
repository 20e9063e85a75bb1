package request

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
)

// MonthQuery is the ?mes= filter used by the invoice screens.
type MonthQuery struct {
	Month string `form:"mes" binding:"required,yyyymm"`
}

type GenerationItemRequest struct {
	Origin string `json:"origem" binding:"required,oneof=contrato venda"`
	ID     string `json:"id" binding:"required"`
}

type GenerateInvoicesRequest struct {
	Month string                  `json:"mes" binding:"required,yyyymm"`
	Items []GenerationItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// ToItems keeps the selection order.
func (r GenerateInvoicesRequest) ToItems() []usecase.GenerationItem {
	items := make([]usecase.GenerationItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.GenerationItem{Origin: entities.InvoiceOrigin(it.Origin), ID: it.ID})
	}
	return items
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r InvoiceStatusRequest) ToStatus() entities.InvoiceStatus {
	return entities.InvoiceStatus(r.Status)
}

type ReceivableQuery struct {
	Month  string `form:"mes" binding:"omitempty,yyyymm"`
	Status string `form:"status" binding:"omitempty,oneof=pendente recebido cancelado"`
}

func (q ReceivableQuery) ToFilter() usecase.ReceivableFilter {
	return usecase.ReceivableFilter{Month: q.Month, Status: entities.ReceivableStatus(q.Status)}
}
