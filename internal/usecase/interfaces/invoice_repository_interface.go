package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// IInvoiceRepository reads invoices (boletos). Creation and deletion always
// go through IUnitOfWork together with the paired receivable.

type IInvoiceRepository interface {
	GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error)
	List(ctx context.Context, companyID string) ([]entities.Invoice, error)
	ListByMonth(ctx context.Context, companyID, month string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}
