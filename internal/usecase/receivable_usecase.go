package usecase

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrReceivableNotFound      = errors.New("receivable not found")
	ErrInvalidReceivableID     = errors.New("invalid receivable id")
	ErrInvalidReceivableStatus = errors.New("invalid receivable status")
	ErrReceivableNotPending    = errors.New("receivable is not pending")
)

type ReceivableFilter struct {
	Month  string
	Status entities.ReceivableStatus
}

type IReceivableUseCase interface {
	List(ctx context.Context, s entities.Session, f ReceivableFilter) ([]entities.Receivable, error)
	Settle(ctx context.Context, s entities.Session, id string) (entities.Receivable, error)
}

type ReceivableUseCase struct {
	repo     interfaces.IReceivableRepository
	invoices interfaces.IInvoiceRepository
	uow      interfaces.IUnitOfWork
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(repo interfaces.IReceivableRepository, invoices interfaces.IInvoiceRepository, uow interfaces.IUnitOfWork) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo, invoices: invoices, uow: uow}
}

func (u *ReceivableUseCase) List(ctx context.Context, s entities.Session, f ReceivableFilter) ([]entities.Receivable, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidReceivableStatus
	}
	month := strings.TrimSpace(f.Month)
	if month != "" {
		if _, err := parseMonth(month); err != nil {
			return nil, err
		}
	}
	all, err := u.repo.List(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Receivable, 0, len(all))
	for _, r := range all {
		if month != "" && r.ReferenceMonth != month {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Settle marks the receivable received and its invoice, if any, paid.
func (u *ReceivableUseCase) Settle(ctx context.Context, s entities.Session, id string) (entities.Receivable, error) {
	if err := checkSession(s); err != nil {
		return entities.Receivable{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receivable{}, ErrInvalidReceivableID
	}
	r, err := u.repo.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Receivable{}, err
	}
	if r.ID == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	if !r.Status.CanTransitionTo(entities.ReceivableStatusRecebido) {
		return entities.Receivable{}, ErrReceivableNotPending
	}

	now := time.Now().UTC()
	r.Status = entities.ReceivableStatusRecebido
	r.ReceivedAt = &now
	r.UpdatedAt = now

	var inv entities.Invoice
	if r.InvoiceID != "" {
		if inv, err = u.invoices.GetByID(ctx, s.CompanyID, r.InvoiceID); err != nil {
			return entities.Receivable{}, err
		}
		if inv.ID != "" && inv.Status.CanTransitionTo(entities.InvoiceStatusPago) {
			inv.Status = entities.InvoiceStatusPago
			inv.PaidAt = &now
			inv.UpdatedAt = now
		} else {
			inv = entities.Invoice{}
		}
	}

	err = u.uow.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.UpdateReceivable(r)
		if inv.ID != "" {
			tx.UpdateInvoice(inv)
		}
		return nil
	})
	if err != nil {
		return entities.Receivable{}, fmt.Errorf("settle receivable %s: %w", r.ID, err)
	}
	return r, nil
}
