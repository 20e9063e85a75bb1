package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type ReceivableRepository struct{ s *Store }

var _ interfaces.IReceivableRepository = (*ReceivableRepository)(nil)

func NewReceivableRepository(s *Store) *ReceivableRepository { return &ReceivableRepository{s: s} }

func (r *ReceivableRepository) GetByID(_ context.Context, companyID, id string) (entities.Receivable, error) {
	return get[entities.Receivable](r.s, collections.Receivables, companyID, id)
}

func (r *ReceivableRepository) List(_ context.Context, companyID string) ([]entities.Receivable, error) {
	return list[entities.Receivable](r.s, collections.Receivables, companyID, nil)
}

func (r *ReceivableRepository) ListByInvoiceID(_ context.Context, companyID, invoiceID string) ([]entities.Receivable, error) {
	return list(r.s, collections.Receivables, companyID, func(x entities.Receivable) bool { return x.InvoiceID == invoiceID })
}

func (r *ReceivableRepository) ListBySaleID(_ context.Context, companyID, saleID string) ([]entities.Receivable, error) {
	return list(r.s, collections.Receivables, companyID, func(x entities.Receivable) bool { return x.SaleID == saleID })
}

func (r *ReceivableRepository) Update(_ context.Context, rec entities.Receivable) (entities.Receivable, error) {
	ok, err := put(r.s, opUpdate, collections.Receivables, rec.CompanyID, rec.ID, rec)
	if err != nil || !ok {
		return entities.Receivable{}, err
	}
	return rec, nil
}
