package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type InvoiceRepository struct{ s *Store }

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(s *Store) *InvoiceRepository { return &InvoiceRepository{s: s} }

func (r *InvoiceRepository) GetByID(_ context.Context, companyID, id string) (entities.Invoice, error) {
	return get[entities.Invoice](r.s, collections.Invoices, companyID, id)
}

func (r *InvoiceRepository) List(_ context.Context, companyID string) ([]entities.Invoice, error) {
	return list[entities.Invoice](r.s, collections.Invoices, companyID, nil)
}

func (r *InvoiceRepository) ListByMonth(_ context.Context, companyID, month string) ([]entities.Invoice, error) {
	return list(r.s, collections.Invoices, companyID, func(i entities.Invoice) bool { return i.ReferenceMonth == month })
}

func (r *InvoiceRepository) Update(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	ok, err := put(r.s, opUpdate, collections.Invoices, inv.CompanyID, inv.ID, inv)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return inv, nil
}
