package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type TicketRepository struct{ s *Store }

var _ interfaces.ITicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(s *Store) *TicketRepository { return &TicketRepository{s: s} }

func (r *TicketRepository) Create(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	if _, err := put(r.s, opCreate, collections.Tickets, t.CompanyID, t.ID, t); err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketRepository) Update(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	ok, err := put(r.s, opUpdate, collections.Tickets, t.CompanyID, t.ID, t)
	if err != nil || !ok {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketRepository) GetByID(_ context.Context, companyID, id string) (entities.Ticket, error) {
	return get[entities.Ticket](r.s, collections.Tickets, companyID, id)
}

func (r *TicketRepository) List(_ context.Context, companyID string) ([]entities.Ticket, error) {
	return list[entities.Ticket](r.s, collections.Tickets, companyID, nil)
}

type BankRepository struct{ s *Store }

var _ interfaces.IBankRepository = (*BankRepository)(nil)

func NewBankRepository(s *Store) *BankRepository { return &BankRepository{s: s} }

func (r *BankRepository) Create(_ context.Context, b entities.Bank) (entities.Bank, error) {
	if _, err := put(r.s, opCreate, collections.Banks, b.CompanyID, b.ID, b); err != nil {
		return entities.Bank{}, err
	}
	return b, nil
}

func (r *BankRepository) GetByID(_ context.Context, companyID, id string) (entities.Bank, error) {
	return get[entities.Bank](r.s, collections.Banks, companyID, id)
}

func (r *BankRepository) List(_ context.Context, companyID string) ([]entities.Bank, error) {
	return list[entities.Bank](r.s, collections.Banks, companyID, nil)
}

type ProductRepository struct{ s *Store }

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(s *Store) *ProductRepository { return &ProductRepository{s: s} }

func (r *ProductRepository) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	if _, err := put(r.s, opCreate, collections.Products, p.CompanyID, p.ID, p); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(_ context.Context, companyID, id string) (entities.Product, error) {
	return get[entities.Product](r.s, collections.Products, companyID, id)
}

func (r *ProductRepository) List(_ context.Context, companyID string) ([]entities.Product, error) {
	return list[entities.Product](r.s, collections.Products, companyID, nil)
}
