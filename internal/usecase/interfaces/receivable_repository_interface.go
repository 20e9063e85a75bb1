package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

type IReceivableRepository interface {
	GetByID(ctx context.Context, companyID, id string) (entities.Receivable, error)
	List(ctx context.Context, companyID string) ([]entities.Receivable, error)
	ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Receivable, error)
	ListBySaleID(ctx context.Context, companyID, saleID string) ([]entities.Receivable, error)
	Update(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
}
