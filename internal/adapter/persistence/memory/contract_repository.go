package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
)

type ContractRepository struct{ s *Store }

var _ interfaces.IContractRepository = (*ContractRepository)(nil)

func NewContractRepository(s *Store) *ContractRepository { return &ContractRepository{s: s} }

func (r *ContractRepository) Create(_ context.Context, c entities.Contract) (entities.Contract, error) {
	if _, err := put(r.s, opCreate, collections.Contracts, c.CompanyID, c.ID, c); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractRepository) Update(_ context.Context, c entities.Contract) (entities.Contract, error) {
	ok, err := put(r.s, opUpdate, collections.Contracts, c.CompanyID, c.ID, c)
	if err != nil || !ok {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractRepository) GetByID(_ context.Context, companyID, id string) (entities.Contract, error) {
	return get[entities.Contract](r.s, collections.Contracts, companyID, id)
}

func (r *ContractRepository) List(_ context.Context, companyID string) ([]entities.Contract, error) {
	return list[entities.Contract](r.s, collections.Contracts, companyID, nil)
}

func (r *ContractRepository) ListByClientID(_ context.Context, companyID, clientID string) ([]entities.Contract, error) {
	return list(r.s, collections.Contracts, companyID, func(c entities.Contract) bool { return c.Client.ID == clientID })
}

func (r *ContractRepository) Numbers(_ context.Context, companyID, prefix string) ([]string, error) {
	contracts, err := list(r.s, collections.Contracts, companyID, func(c entities.Contract) bool {
		return strings.HasPrefix(c.Number, prefix)
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, c.Number)
	}
	return out, nil
}
