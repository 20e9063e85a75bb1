package request

import "gestao_comercial/internal/domain/entities"

type SaleQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pendente_faturamento faturado cancelada"`
}

func (q SaleQuery) ToStatus() entities.SaleStatus {
	return entities.SaleStatus(q.Status)
}
