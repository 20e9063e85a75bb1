package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

// UnitOfWork applies the staged writes under the store lock, all or nothing.
type UnitOfWork struct{ s *Store }

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(s *Store) *UnitOfWork { return &UnitOfWork{s: s} }

func (u *UnitOfWork) Run(ctx context.Context, fn func(tx interfaces.IWriteSet) error) error {
	ws := &writeSet{}
	if err := fn(ws); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ws.ops) == 0 {
		return nil
	}
	return u.s.write(ws.ops...)
}

type writeSet struct{ ops []op }

func (w *writeSet) stage(kind opKind, collection, partition, id string, v any) {
	w.ops = append(w.ops, op{kind: kind, collection: collection, partition: partition, id: id, value: v})
}

func (w *writeSet) CreateSale(s entities.Sale) {
	w.stage(opCreate, collections.Sales, s.CompanyID, s.ID, s)
}

func (w *writeSet) UpdateSale(s entities.Sale) {
	w.stage(opUpdate, collections.Sales, s.CompanyID, s.ID, s)
}

func (w *writeSet) UpdateQuote(q entities.Quote) {
	w.stage(opUpdate, q.Kind.Collection(), q.CompanyID, q.ID, q)
}

func (w *writeSet) TransitionQuote(q entities.Quote, from entities.QuoteStatus) {
	w.ops = append(w.ops, op{
		kind:       opUpdate,
		collection: q.Kind.Collection(),
		partition:  q.CompanyID,
		id:         q.ID,
		value:      q,
		guard:      statusIs(string(from)),
	})
}

func (w *writeSet) CreateContract(c entities.Contract) {
	w.stage(opCreate, collections.Contracts, c.CompanyID, c.ID, c)
}

func (w *writeSet) UpdateContract(c entities.Contract) {
	w.stage(opUpdate, collections.Contracts, c.CompanyID, c.ID, c)
}

func (w *writeSet) UpdateClient(c entities.Client) {
	w.stage(opUpdate, collections.Clients, c.CompanyID, c.ID, c)
}

func (w *writeSet) UpdateCostCenter(cc entities.CostCenter) {
	w.stage(opUpdate, collections.CostCenters, cc.CompanyID, cc.ID, cc)
}

func (w *writeSet) UpdateTicket(t entities.Ticket) {
	w.stage(opUpdate, collections.Tickets, t.CompanyID, t.ID, t)
}

func (w *writeSet) CreateInvoice(inv entities.Invoice) {
	w.stage(opCreate, collections.Invoices, inv.CompanyID, inv.ID, inv)
}

func (w *writeSet) UpdateInvoice(inv entities.Invoice) {
	w.stage(opUpdate, collections.Invoices, inv.CompanyID, inv.ID, inv)
}

func (w *writeSet) DeleteInvoice(companyID, id string) {
	w.stage(opDelete, collections.Invoices, companyID, id, nil)
}

func (w *writeSet) CreateReceivable(r entities.Receivable) {
	w.stage(opCreate, collections.Receivables, r.CompanyID, r.ID, r)
}

func (w *writeSet) UpdateReceivable(r entities.Receivable) {
	w.stage(opUpdate, collections.Receivables, r.CompanyID, r.ID, r)
}

func (w *writeSet) DeleteReceivable(companyID, id string) {
	w.stage(opDelete, collections.Receivables, companyID, id, nil)
}
