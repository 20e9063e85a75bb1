package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Ticket, error)
	List(ctx context.Context, companyID string) ([]entities.Ticket, error)
}
