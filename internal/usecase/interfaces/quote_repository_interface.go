package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// IQuoteRepository persists quotes. The kind selects the collection
// (orcamentosEquipamentos or orcamentosContratos).

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, companyID string, kind entities.QuoteKind, id string) (entities.Quote, error)
	List(ctx context.Context, companyID string, kind entities.QuoteKind) ([]entities.Quote, error)
	// Numbers returns the numbers of the kind starting with prefix.
	Numbers(ctx context.Context, companyID string, kind entities.QuoteKind, prefix string) ([]string, error)
}
