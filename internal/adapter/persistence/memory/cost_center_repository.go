package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type CostCenterRepository struct{ s *Store }

var _ interfaces.ICostCenterRepository = (*CostCenterRepository)(nil)

func NewCostCenterRepository(s *Store) *CostCenterRepository { return &CostCenterRepository{s: s} }

func (r *CostCenterRepository) GetByCode(_ context.Context, companyID, code string) (entities.CostCenter, error) {
	return get[entities.CostCenter](r.s, collections.CostCenters, companyID, code)
}

func (r *CostCenterRepository) Create(_ context.Context, cc entities.CostCenter) (entities.CostCenter, error) {
	if _, err := put(r.s, opCreate, collections.CostCenters, cc.CompanyID, cc.ID, cc); err != nil {
		return entities.CostCenter{}, err
	}
	return cc, nil
}

func (r *CostCenterRepository) Update(_ context.Context, cc entities.CostCenter) (entities.CostCenter, error) {
	ok, err := put(r.s, opUpdate, collections.CostCenters, cc.CompanyID, cc.ID, cc)
	if err != nil || !ok {
		return entities.CostCenter{}, err
	}
	return cc, nil
}

func (r *CostCenterRepository) List(_ context.Context, companyID string) ([]entities.CostCenter, error) {
	return list[entities.CostCenter](r.s, collections.CostCenters, companyID, nil)
}

func (r *CostCenterRepository) GetGroupByCode(_ context.Context, companyID, code string) (entities.CostCenterGroup, error) {
	return get[entities.CostCenterGroup](r.s, collections.CostCenterGroups, companyID, code)
}

func (r *CostCenterRepository) CreateGroup(_ context.Context, g entities.CostCenterGroup) (entities.CostCenterGroup, error) {
	if _, err := put(r.s, opCreate, collections.CostCenterGroups, g.CompanyID, g.ID, g); err != nil {
		return entities.CostCenterGroup{}, err
	}
	return g, nil
}
