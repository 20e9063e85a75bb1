package request

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
)

type TicketRequest struct {
	ClientID    string `json:"clienteId" binding:"required"`
	Description string `json:"descricao" binding:"required"`
}

func (r TicketRequest) ToInput() usecase.TicketInput {
	return usecase.TicketInput{ClientID: r.ClientID, Description: r.Description}
}

type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"observacao"`
}

func (r TicketStatusRequest) ToStatus() entities.TicketStatus {
	return entities.TicketStatus(r.Status)
}
