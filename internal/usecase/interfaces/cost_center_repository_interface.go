package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// ICostCenterRepository persists centros_custo and centro_custo_grupos.
//
// Documents are keyed by their code, so Create and CreateGroup are
// conditional and return ErrAlreadyExists when the code is already taken.

type ICostCenterRepository interface {
	GetByCode(ctx context.Context, companyID, code string) (entities.CostCenter, error)
	Create(ctx context.Context, cc entities.CostCenter) (entities.CostCenter, error)
	Update(ctx context.Context, cc entities.CostCenter) (entities.CostCenter, error)
	List(ctx context.Context, companyID string) ([]entities.CostCenter, error)

	GetGroupByCode(ctx context.Context, companyID, code string) (entities.CostCenterGroup, error)
	CreateGroup(ctx context.Context, g entities.CostCenterGroup) (entities.CostCenterGroup, error)
}
