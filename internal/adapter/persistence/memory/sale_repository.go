package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type SaleRepository struct{ s *Store }

var _ interfaces.ISaleRepository = (*SaleRepository)(nil)

func NewSaleRepository(s *Store) *SaleRepository { return &SaleRepository{s: s} }

func (r *SaleRepository) GetByID(_ context.Context, companyID, id string) (entities.Sale, error) {
	return get[entities.Sale](r.s, collections.Sales, companyID, id)
}

func (r *SaleRepository) GetByQuoteID(_ context.Context, companyID, quoteID string) (entities.Sale, error) {
	sales, err := list(r.s, collections.Sales, companyID, func(s entities.Sale) bool { return s.QuoteID == quoteID })
	if err != nil || len(sales) == 0 {
		return entities.Sale{}, err
	}
	return sales[0], nil
}

func (r *SaleRepository) List(_ context.Context, companyID string) ([]entities.Sale, error) {
	return list[entities.Sale](r.s, collections.Sales, companyID, nil)
}
