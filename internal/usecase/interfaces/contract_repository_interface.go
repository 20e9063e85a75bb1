package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Contract, error)
	List(ctx context.Context, companyID string) ([]entities.Contract, error)
	ListByClientID(ctx context.Context, companyID, clientID string) ([]entities.Contract, error)
	Numbers(ctx context.Context, companyID, prefix string) ([]string, error)
}
