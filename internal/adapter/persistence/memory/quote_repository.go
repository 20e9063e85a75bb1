package memory

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
)

type QuoteRepository struct{ s *Store }

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(s *Store) *QuoteRepository { return &QuoteRepository{s: s} }

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	if _, err := put(r.s, opCreate, q.Kind.Collection(), q.CompanyID, q.ID, q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) Update(_ context.Context, q entities.Quote) (entities.Quote, error) {
	ok, err := put(r.s, opUpdate, q.Kind.Collection(), q.CompanyID, q.ID, q)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, companyID string, kind entities.QuoteKind, id string) (entities.Quote, error) {
	return get[entities.Quote](r.s, kind.Collection(), companyID, id)
}

func (r *QuoteRepository) List(_ context.Context, companyID string, kind entities.QuoteKind) ([]entities.Quote, error) {
	return list[entities.Quote](r.s, kind.Collection(), companyID, nil)
}

func (r *QuoteRepository) Numbers(_ context.Context, companyID string, kind entities.QuoteKind, prefix string) ([]string, error) {
	quotes, err := list(r.s, kind.Collection(), companyID, func(q entities.Quote) bool {
		return strings.HasPrefix(q.Number, prefix)
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Number)
	}
	return out, nil
}
