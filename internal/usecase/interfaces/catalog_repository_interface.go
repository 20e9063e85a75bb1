package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

type IBankRepository interface {
	Create(ctx context.Context, b entities.Bank) (entities.Bank, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Bank, error)
	List(ctx context.Context, companyID string) ([]entities.Bank, error)
}

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Product, error)
	List(ctx context.Context, companyID string) ([]entities.Product, error)
}
