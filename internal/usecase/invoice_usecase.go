package usecase

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/numbering"
	"gestao_comercial/internal/usecase/interfaces"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidMonth             = errors.New("invalid reference month, expected YYYY-MM")
	ErrInvalidInvoiceStatus     = errors.New("invalid invoice status")
	ErrInvalidInvoiceTransition = errors.New("invoice status transition not allowed")
	ErrInvoiceNotDeletable      = errors.New("paid invoices cannot be deleted")
	ErrNoGenerationItems        = errors.New("no items selected for generation")
	ErrInvalidGenerationItem    = errors.New("invalid generation item")
	ErrItemNotEligible          = errors.New("item is not eligible for invoice generation")
	ErrBankGatewayNotConfigured = errors.New("bank slip gateway not configured")
	ErrBankRegistrationFailed   = errors.New("bank slip registration failed")
	ErrInvoiceAlreadyRegistered = errors.New("invoice already registered at the bank")
	ErrExporterNotConfigured    = errors.New("invoice exporter not configured")
)

const invoiceLockTTL = 2 * time.Minute

type IInvoiceUseCase interface {
	ListCandidates(ctx context.Context, s entities.Session, month string) ([]InvoiceCandidate, error)
	Generate(ctx context.Context, s entities.Session, month string, items []GenerationItem) (GenerationResult, error)
	GetByID(ctx context.Context, s entities.Session, id string) (entities.Invoice, error)
	List(ctx context.Context, s entities.Session, month string) ([]entities.Invoice, error)
	ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, s entities.Session, id string) error
	RegisterWithBank(ctx context.Context, s entities.Session, id string) (entities.Invoice, error)
	RenderHTML(ctx context.Context, s entities.Session, id string) (string, error)
	ExportXLSX(ctx context.Context, s entities.Session, month string, w io.Writer) error
}

type InvoiceDeps struct {
	Invoices    interfaces.IInvoiceRepository
	Receivables interfaces.IReceivableRepository
	Contracts   interfaces.IContractRepository
	Sales       interfaces.ISaleRepository
	Clients     interfaces.IClientRepository
	UnitOfWork  interfaces.IUnitOfWork
	CostCenters ICostCenterUseCase
	Locker      interfaces.ILocker
	Gateway     interfaces.IBankSlipGateway
	Renderer    interfaces.IDocumentRenderer
	Exporter    interfaces.IInvoiceExporter
}

type InvoiceUseCase struct {
	InvoiceDeps
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(deps InvoiceDeps) *InvoiceUseCase {
	return &InvoiceUseCase{InvoiceDeps: deps}
}

func parseMonth(month string) (time.Time, error) {
	t, err := numbering.ParseMonth(month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return t, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, s entities.Session, id string) (entities.Invoice, error) {
	if err := checkSession(s); err != nil {
		return entities.Invoice{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.Invoices.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return u.refreshOverdue(ctx, inv, time.Now().UTC()), nil
}

// List returns the invoices of month, or all of them when month is empty.
func (u *InvoiceUseCase) List(ctx context.Context, s entities.Session, month string) ([]entities.Invoice, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	var (
		invoices []entities.Invoice
		err      error
	)
	month = strings.TrimSpace(month)
	if month == "" {
		invoices, err = u.Invoices.List(ctx, s.CompanyID)
	} else {
		if _, err = parseMonth(month); err != nil {
			return nil, err
		}
		invoices, err = u.Invoices.ListByMonth(ctx, s.CompanyID, month)
	}
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range invoices {
		invoices[i] = u.refreshOverdue(ctx, invoices[i], now)
	}
	return invoices, nil
}

// refreshOverdue moves an open invoice past its due date to atrasado and
// writes it back.
func (u *InvoiceUseCase) refreshOverdue(ctx context.Context, inv entities.Invoice, now time.Time) entities.Invoice {
	if !inv.IsOverdue(now) {
		return inv
	}
	inv.Status = entities.InvoiceStatusAtrasado
	inv.UpdatedAt = now
	if _, err := u.Invoices.Update(ctx, inv); err != nil {
		log.Warn().Err(err).Str("component", "invoice").Str("invoice_id", inv.ID).Msg("overdue write-back failed")
	}
	return inv
}

func (u *InvoiceUseCase) ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	inv, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !inv.Status.CanTransitionTo(status) {
		return entities.Invoice{}, fmt.Errorf("%w: %s -> %s", ErrInvalidInvoiceTransition, inv.Status, status)
	}

	receivables, err := u.Receivables.ListByInvoiceID(ctx, s.CompanyID, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv.Status = status
	inv.UpdatedAt = now
	if status == entities.InvoiceStatusPago {
		inv.PaidAt = &now
	}

	var follow entities.ReceivableStatus
	switch status {
	case entities.InvoiceStatusPago:
		follow = entities.ReceivableStatusRecebido
	case entities.InvoiceStatusCancelado:
		follow = entities.ReceivableStatusCancelado
	}

	err = u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.UpdateInvoice(inv)
		if follow == "" {
			return nil
		}
		for _, r := range receivables {
			if !r.Status.CanTransitionTo(follow) {
				continue
			}
			r.Status = follow
			if follow == entities.ReceivableStatusRecebido {
				r.ReceivedAt = &now
			}
			r.UpdatedAt = now
			tx.UpdateReceivable(r)
		}
		return nil
	})
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("change invoice %s status: %w", inv.Number, err)
	}
	return inv, nil
}

// Delete removes the invoice with every receivable that references it. A
// sale billed by the invoice goes back to pendente_faturamento.
func (u *InvoiceUseCase) Delete(ctx context.Context, s entities.Session, id string) error {
	if err := checkSession(s); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}
	inv, err := u.Invoices.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPago {
		return ErrInvoiceNotDeletable
	}

	receivables, err := u.Receivables.ListByInvoiceID(ctx, s.CompanyID, inv.ID)
	if err != nil {
		return err
	}
	var sale entities.Sale
	if inv.SaleID != "" {
		if sale, err = u.Sales.GetByID(ctx, s.CompanyID, inv.SaleID); err != nil {
			return err
		}
	}
	reopenSale := sale.ID != "" && sale.InvoiceID == inv.ID &&
		sale.Status.CanTransitionTo(entities.SaleStatusPendenteFaturamento)
	if reopenSale {
		sale.Status = entities.SaleStatusPendenteFaturamento
		sale.InvoiceID = ""
		sale.UpdatedAt = time.Now().UTC()
	}

	err = u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.DeleteInvoice(s.CompanyID, inv.ID)
		for _, r := range receivables {
			tx.DeleteReceivable(s.CompanyID, r.ID)
		}
		if reopenSale {
			tx.UpdateSale(sale)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete invoice %s: %w", inv.Number, err)
	}
	log.Info().Str("component", "invoice").Str("invoice_id", inv.ID).Int("receivables", len(receivables)).Msg("invoice deleted")
	return nil
}

// RegisterWithBank registers a pending invoice as a boleto at the gateway.
func (u *InvoiceUseCase) RegisterWithBank(ctx context.Context, s entities.Session, id string) (entities.Invoice, error) {
	if u.Gateway == nil {
		return entities.Invoice{}, ErrBankGatewayNotConfigured
	}
	inv, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Registration != nil {
		return entities.Invoice{}, ErrInvoiceAlreadyRegistered
	}
	if inv.Status != entities.InvoiceStatusPendente {
		return entities.Invoice{}, fmt.Errorf("%w: %s -> %s", ErrInvalidInvoiceTransition, inv.Status, entities.InvoiceStatusEnviadoBanco)
	}

	reg, err := u.Gateway.RegisterBoleto(ctx, interfaces.BoletoRequest{
		ExternalReference: inv.ID,
		Description:       fmt.Sprintf("%s - %s", inv.Number, inv.Description),
		Amount:            inv.Amount,
		DueDate:           inv.DueDate,
		PayerName:         inv.Client.Name,
		PayerEmail:        inv.Client.Contact.Email,
		PayerDocument:     inv.Client.Document,
		PayerAddress:      inv.Client.Address,
	})
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrBankRegistrationFailed, err)
	}

	inv.Registration = &reg
	inv.Status = entities.InvoiceStatusEnviadoBanco
	inv.UpdatedAt = time.Now().UTC()
	updated, err := u.Invoices.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Info().Str("component", "invoice").Str("invoice_id", inv.ID).Str("gateway_id", reg.GatewayID).Msg("boleto registered")
	return updated, nil
}

func (u *InvoiceUseCase) RenderHTML(ctx context.Context, s entities.Session, id string) (string, error) {
	if u.Renderer == nil {
		return "", ErrRendererMissing
	}
	inv, err := u.GetByID(ctx, s, id)
	if err != nil {
		return "", err
	}
	html, err := u.Renderer.InvoiceHTML(inv)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRenderFail, err)
	}
	return html, nil
}

func (u *InvoiceUseCase) ExportXLSX(ctx context.Context, s entities.Session, month string, w io.Writer) error {
	if u.Exporter == nil {
		return ErrExporterNotConfigured
	}
	if _, err := parseMonth(month); err != nil {
		return err
	}
	invoices, err := u.List(ctx, s, month)
	if err != nil {
		return err
	}
	return u.Exporter.ExportInvoices(w, strings.TrimSpace(month), invoices)
}
