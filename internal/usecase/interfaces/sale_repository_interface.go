package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// ISaleRepository reads sales (vendas). Sales are created and updated
// inside units of work.

type ISaleRepository interface {
	GetByID(ctx context.Context, companyID, id string) (entities.Sale, error)
	GetByQuoteID(ctx context.Context, companyID, quoteID string) (entities.Sale, error)
	List(ctx context.Context, companyID string) ([]entities.Sale, error)
}
