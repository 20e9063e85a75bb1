package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// IUnitOfWork commits a set of document writes atomically.
//
// Writes staged on the IWriteSet inside fn are buffered; they are committed
// together only when fn returns nil. If fn fails or the commit fails, none of
// them is visible. Creates fail when the document exists, updates fail when
// it does not.
type IUnitOfWork interface {
	Run(ctx context.Context, fn func(tx IWriteSet) error) error
}

type IWriteSet interface {
	CreateSale(s entities.Sale)
	UpdateSale(s entities.Sale)
	UpdateQuote(q entities.Quote)
	// TransitionQuote updates the quote only while its stored status is still
	// from; otherwise the commit fails with ErrStaleDocument.
	TransitionQuote(q entities.Quote, from entities.QuoteStatus)
	CreateContract(c entities.Contract)
	UpdateContract(c entities.Contract)
	UpdateClient(c entities.Client)
	UpdateCostCenter(cc entities.CostCenter)
	UpdateTicket(t entities.Ticket)
	CreateInvoice(inv entities.Invoice)
	UpdateInvoice(inv entities.Invoice)
	DeleteInvoice(companyID, id string)
	CreateReceivable(r entities.Receivable)
	UpdateReceivable(r entities.Receivable)
	DeleteReceivable(companyID, id string)
}
