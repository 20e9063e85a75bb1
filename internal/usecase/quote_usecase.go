package usecase

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/numbering"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuoteKind       = errors.New("invalid quote kind")
	ErrInvalidQuoteItem       = errors.New("invalid quote item")
	ErrInvalidPaymentTerms    = errors.New("invalid payment terms")
	ErrInvalidBillingDay      = errors.New("billing day must be between 1 and 31")
	ErrQuoteWithoutItems      = errors.New("quote has no items")
	ErrQuoteNotEditable       = errors.New("quote can no longer be edited")
	ErrQuoteAlreadyApproved   = errors.New("quote already approved")
	ErrQuoteChanged           = errors.New("quote changed by another request")
	ErrInvalidQuoteTransition = errors.New("quote status transition not allowed")
	ErrInvalidRejectReason    = errors.New("reject reason is required")
)

const numberingLockTTL = 30 * time.Second

// QuoteInput carries the editable part of a quote. Contract fields are
// ignored for equipment quotes.
type QuoteInput struct {
	ClientID       string
	TicketID       string
	Items          []entities.QuoteItem
	Payment        entities.PaymentTerms
	ValidUntil     *time.Time
	Notes          string
	MonthlyValue   decimal.Decimal
	BillingDay     int
	BankID         string
	Periodicity    string
	CoveredEquip   []string
	UncoveredEquip []string
}

// ApprovalResult is everything the approval unit of work created.
type ApprovalResult struct {
	Quote    entities.Quote
	Sale     entities.Sale
	Contract *entities.Contract
}

type IQuoteUseCase interface {
	Create(ctx context.Context, s entities.Session, kind entities.QuoteKind, in QuoteInput) (entities.Quote, error)
	Update(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string, in QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (entities.Quote, error)
	List(ctx context.Context, s entities.Session, kind entities.QuoteKind) ([]entities.Quote, error)
	MarkSent(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (entities.Quote, error)
	Approve(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (ApprovalResult, error)
	Reject(ctx context.Context, s entities.Session, kind entities.QuoteKind, id, reason string, returnTicket bool) (entities.Quote, error)
	RenderHTML(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (string, error)
	RenderPDF(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) ([]byte, entities.Quote, error)
	SendByEmail(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string, in EmailInput) (EmailResult, error)
}

// QuoteDeps groups the collaborators of the quote workflow.
type QuoteDeps struct {
	Quotes      interfaces.IQuoteRepository
	Clients     interfaces.IClientRepository
	Sales       interfaces.ISaleRepository
	Contracts   interfaces.IContractRepository
	Tickets     interfaces.ITicketRepository
	Banks       interfaces.IBankRepository
	UnitOfWork  interfaces.IUnitOfWork
	CostCenters ICostCenterUseCase
	Locker      interfaces.ILocker
	Renderer    interfaces.IDocumentRenderer
	Archive     interfaces.IDocumentArchive
	MailRelay   interfaces.IMailRelayClient
}

type QuoteUseCase struct {
	QuoteDeps
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(deps QuoteDeps) *QuoteUseCase {
	return &QuoteUseCase{QuoteDeps: deps}
}

func (u *QuoteUseCase) Create(ctx context.Context, s entities.Session, kind entities.QuoteKind, in QuoteInput) (entities.Quote, error) {
	if err := checkSession(s); err != nil {
		return entities.Quote{}, err
	}
	if !kind.Valid() {
		return entities.Quote{}, ErrInvalidQuoteKind
	}
	if err := validateQuoteInput(kind, &in); err != nil {
		return entities.Quote{}, err
	}
	client, err := u.clientSnapshot(ctx, s.CompanyID, in.ClientID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		CompanyID: s.CompanyID,
		Kind:      kind,
		Client:    client,
		Status:    entities.QuoteStatusEmElaboracao,
		TicketID:  strings.TrimSpace(in.TicketID),
		History:   []entities.AuditEntry{entities.NewAuditEntry(s, "criado", "", now)},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyQuoteInput(&q, in)

	key := fmt.Sprintf("quote-number:%s:%s", s.CompanyID, numbering.MonthKey(now))
	err = withLock(ctx, u.Locker, key, numberingLockTTL, func() error {
		seq, err := u.maxQuoteSequence(ctx, s.CompanyID, now)
		if err != nil {
			return err
		}
		q.Number = numbering.Format(numbering.QuotePrefix, now, seq+1)
		q, err = u.Quotes.Create(ctx, q)
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Info().Str("component", "quote").Str("company_id", s.CompanyID).Str("number", q.Number).Msg("quote created")
	return q, nil
}

// maxQuoteSequence looks at both quote collections: numbers are shared.
func (u *QuoteUseCase) maxQuoteSequence(ctx context.Context, companyID string, month time.Time) (int, error) {
	prefix := numbering.QuotePrefix + numbering.MonthKey(month)
	var all []string
	for _, k := range []entities.QuoteKind{entities.QuoteKindEquipment, entities.QuoteKindContract} {
		numbers, err := u.Quotes.Numbers(ctx, companyID, k, prefix)
		if err != nil {
			return 0, err
		}
		all = append(all, numbers...)
	}
	return numbering.MaxSequence(all, numbering.QuotePrefix, month), nil
}

func (u *QuoteUseCase) Update(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string, in QuoteInput) (entities.Quote, error) {
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := validateQuoteInput(kind, &in); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	switch {
	case q.Status.Editable():
	case q.Status.CanTransitionTo(entities.QuoteStatusEmElaboracao):
		// editing a rejected or expired quote reopens it
		q.Status = entities.QuoteStatusEmElaboracao
		q.RejectReason = ""
		q.History = append(q.History, entities.NewAuditEntry(s, "reaberto", "", now))
	default:
		return entities.Quote{}, ErrQuoteNotEditable
	}

	if cid := strings.TrimSpace(in.ClientID); cid != "" && cid != q.Client.ID {
		if q.Client, err = u.clientSnapshot(ctx, s.CompanyID, cid); err != nil {
			return entities.Quote{}, err
		}
	}
	applyQuoteInput(&q, in)
	q.History = append(q.History, entities.NewAuditEntry(s, "editado", "", now))
	q.UpdatedAt = now

	updated, err := u.Quotes.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// GetByID loads a quote, applying the expiry rule on load.
func (u *QuoteUseCase) GetByID(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (entities.Quote, error) {
	if err := checkSession(s); err != nil {
		return entities.Quote{}, err
	}
	if !kind.Valid() {
		return entities.Quote{}, ErrInvalidQuoteKind
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.Quotes.GetByID(ctx, s.CompanyID, kind, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return u.refreshExpiry(ctx, q, time.Now().UTC()), nil
}

func (u *QuoteUseCase) List(ctx context.Context, s entities.Session, kind entities.QuoteKind) ([]entities.Quote, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, ErrInvalidQuoteKind
	}
	quotes, err := u.Quotes.List(ctx, s.CompanyID, kind)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range quotes {
		quotes[i] = u.refreshExpiry(ctx, quotes[i], now)
	}
	return quotes, nil
}

// refreshExpiry turns a sent quote past its validity into expirado and
// writes the derived status back. A failed write is logged; the caller still
// sees the derived status.
func (u *QuoteUseCase) refreshExpiry(ctx context.Context, q entities.Quote, now time.Time) entities.Quote {
	if !q.IsExpired(now) {
		return q
	}
	q.Status = entities.QuoteStatusExpirado
	q.History = append(q.History, entities.AuditEntry{Date: now, UserName: "sistema", Action: "expirado"})
	q.UpdatedAt = now
	if _, err := u.Quotes.Update(ctx, q); err != nil {
		log.Warn().Err(err).Str("component", "quote").Str("quote_id", q.ID).Msg("expiry write-back failed")
	}
	return q
}

func (u *QuoteUseCase) MarkSent(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return entities.Quote{}, err
	}
	return u.markSent(ctx, s, q, "")
}

func (u *QuoteUseCase) markSent(ctx context.Context, s entities.Session, q entities.Quote, detail string) (entities.Quote, error) {
	if !q.Status.CanTransitionTo(entities.QuoteStatusEnviado) {
		return entities.Quote{}, ErrInvalidQuoteTransition
	}
	now := time.Now().UTC()
	q.Status = entities.QuoteStatusEnviado
	q.History = append(q.History, entities.NewAuditEntry(s, "enviado", detail, now))
	q.UpdatedAt = now
	updated, err := u.Quotes.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Approve creates the sale (and its pending receivable), marks the quote
// approved, creates the contract for contract quotes and moves the linked
// ticket, all in one unit of work. Client and cost center updates follow as
// best-effort steps.
func (u *QuoteUseCase) Approve(ctx context.Context, s entities.Session, kind entities.QuoteKind, id string) (ApprovalResult, error) {
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return ApprovalResult{}, err
	}
	if q.Status == entities.QuoteStatusAprovado || q.SaleGenerated {
		return ApprovalResult{}, ErrQuoteAlreadyApproved
	}
	if len(q.Items) == 0 {
		return ApprovalResult{}, ErrQuoteWithoutItems
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusAprovado) {
		return ApprovalResult{}, ErrInvalidQuoteTransition
	}
	if existing, err := u.Sales.GetByQuoteID(ctx, s.CompanyID, q.ID); err != nil {
		return ApprovalResult{}, err
	} else if existing.ID != "" {
		return ApprovalResult{}, ErrQuoteAlreadyApproved
	}

	client, err := u.Clients.GetByID(ctx, s.CompanyID, q.Client.ID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if client.ID == "" {
		return ApprovalResult{}, ErrClientNotFound
	}
	contacts, err := u.Clients.ListContacts(ctx, s.CompanyID, client.ID)
	if err != nil {
		return ApprovalResult{}, err
	}
	snapshot := client.Snapshot(contacts)

	now := time.Now().UTC()
	sale := entities.Sale{
		ID:          uuid.NewString(),
		CompanyID:   s.CompanyID,
		QuoteID:     q.ID,
		QuoteNumber: q.Number,
		QuoteKind:   q.Kind,
		Client:      snapshot,
		Items:       q.Items,
		Payment:     q.Payment,
		Total:       q.Total,
		Status:      entities.SaleStatusPendenteFaturamento,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	receivable := entities.Receivable{
		ID:          uuid.NewString(),
		CompanyID:   s.CompanyID,
		SaleID:      sale.ID,
		ClientID:    client.ID,
		ClientName:  client.Name,
		Description: "Venda " + q.Number,
		Amount:      q.Total,
		DueDate:     q.Payment.DueDate,
		Status:      entities.ReceivableStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var contract *entities.Contract
	if q.Kind == entities.QuoteKindContract {
		c := u.contractFromQuote(ctx, s, q, snapshot, now)
		contract = &c
		q.ContractID = c.ID
	}

	ticket, err := u.linkedTicket(ctx, s.CompanyID, q.TicketID)
	if err != nil {
		return ApprovalResult{}, err
	}
	ticketMoved := moveTicket(&ticket, s, entities.TicketStatusOrcamentoAprovado, "orçamento "+q.Number+" aprovado", now)

	from := q.Status
	q.Client = snapshot
	q.Status = entities.QuoteStatusAprovado
	q.SaleGenerated = true
	q.SaleID = sale.ID
	q.History = append(q.History, entities.NewAuditEntry(s, "aprovado", "venda "+sale.ID, now))
	q.UpdatedAt = now

	commit := func() error {
		return u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
			tx.CreateSale(sale)
			tx.CreateReceivable(receivable)
			tx.TransitionQuote(q, from)
			if contract != nil {
				tx.CreateContract(*contract)
			}
			if ticketMoved {
				tx.UpdateTicket(ticket)
			}
			return nil
		})
	}
	if contract != nil {
		err = withContractNumber(ctx, u.Contracts, u.Locker, s.CompanyID, now, func(number string) error {
			contract.Number = number
			return commit()
		})
	} else {
		err = commit()
	}
	if errors.Is(err, interfaces.ErrStaleDocument) {
		return ApprovalResult{}, ErrQuoteChanged
	}
	if err != nil {
		log.Error().Err(err).Str("component", "quote").Str("quote_id", q.ID).Msg("approval not committed")
		return ApprovalResult{}, fmt.Errorf("approve quote %s: %w", q.Number, err)
	}
	log.Info().Str("component", "quote").Str("quote_id", q.ID).Str("sale_id", sale.ID).Msg("quote approved")

	u.afterApproval(ctx, s, client.ID, contract)
	return ApprovalResult{Quote: q, Sale: sale, Contract: contract}, nil
}

// contractFromQuote builds the contract of an approved contract quote. The
// number is assigned when the approval commits.
func (u *QuoteUseCase) contractFromQuote(ctx context.Context, s entities.Session, q entities.Quote, client entities.ClientSnapshot, now time.Time) entities.Contract {
	start := now
	c := entities.Contract{
		ID:             uuid.NewString(),
		CompanyID:      s.CompanyID,
		QuoteID:        q.ID,
		Client:         client,
		CoveredEquip:   q.CoveredEquip,
		UncoveredEquip: q.UncoveredEquip,
		MonthlyValue:   q.MonthlyValue,
		BillingDay:     q.BillingDay,
		BankID:         q.BankID,
		Periodicity:    q.Periodicity,
		StartDate:      &start,
		Status:         entities.ContractStatusAprovado,
		Situation:      entities.ContractSituationAtivo,
		Notes:          q.Notes,
		History:        []entities.AuditEntry{entities.NewAuditEntry(s, "criado", "aprovação do orçamento "+q.Number, now)},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.BankID != "" && u.Banks != nil {
		if bank, err := u.Banks.GetByID(ctx, s.CompanyID, c.BankID); err == nil {
			c.BankName = bank.Name
		}
	}
	return c
}

// afterApproval runs the best-effort client updates.
func (u *QuoteUseCase) afterApproval(ctx context.Context, s entities.Session, clientID string, contract *entities.Contract) {
	client, err := u.Clients.GetByID(ctx, s.CompanyID, clientID)
	if err != nil || client.ID == "" {
		log.Warn().Err(err).Str("component", "quote").Str("client_id", clientID).Msg("client reload after approval failed")
		return
	}
	changed := !client.HasContract
	client.HasContract = true
	if contract != nil && client.ContractStatus != entities.ClientContractAtivo {
		client.ContractStatus = entities.ClientContractAtivo
		changed = true
	}
	if changed {
		client.UpdatedAt = time.Now().UTC()
		if client, err = u.Clients.Update(ctx, client); err != nil || client.ID == "" {
			log.Warn().Err(err).Str("component", "quote").Str("client_id", clientID).Msg("client update after approval failed")
			return
		}
	}
	ensureCostCenterBestEffort(ctx, u.CostCenters, s, client, "quote_approval")
}

func (u *QuoteUseCase) Reject(ctx context.Context, s entities.Session, kind entities.QuoteKind, id, reason string, returnTicket bool) (entities.Quote, error) {
	q, err := u.GetByID(ctx, s, kind, id)
	if err != nil {
		return entities.Quote{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Quote{}, ErrInvalidRejectReason
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusReprovado) {
		return entities.Quote{}, ErrInvalidQuoteTransition
	}

	ticket, err := u.linkedTicket(ctx, s.CompanyID, q.TicketID)
	if err != nil {
		return entities.Quote{}, err
	}
	next := entities.TicketStatusOrcamentoReprovado
	if returnTicket {
		next = entities.TicketStatusPendenteRetorno
	}

	now := time.Now().UTC()
	ticketMoved := moveTicket(&ticket, s, next, "orçamento "+q.Number+" reprovado: "+reason, now)
	from := q.Status
	q.Status = entities.QuoteStatusReprovado
	q.RejectReason = reason
	q.History = append(q.History, entities.NewAuditEntry(s, "reprovado", reason, now))
	q.UpdatedAt = now

	err = u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.TransitionQuote(q, from)
		if ticketMoved {
			tx.UpdateTicket(ticket)
		}
		return nil
	})
	if errors.Is(err, interfaces.ErrStaleDocument) {
		return entities.Quote{}, ErrQuoteChanged
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("reject quote %s: %w", q.Number, err)
	}
	return q, nil
}

func (u *QuoteUseCase) clientSnapshot(ctx context.Context, companyID, clientID string) (entities.ClientSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ClientSnapshot{}, ErrInvalidClientID
	}
	client, err := u.Clients.GetByID(ctx, companyID, clientID)
	if err != nil {
		return entities.ClientSnapshot{}, err
	}
	if client.ID == "" {
		return entities.ClientSnapshot{}, ErrClientNotFound
	}
	contacts, err := u.Clients.ListContacts(ctx, companyID, clientID)
	if err != nil {
		return entities.ClientSnapshot{}, err
	}
	return client.Snapshot(contacts), nil
}

func (u *QuoteUseCase) linkedTicket(ctx context.Context, companyID, ticketID string) (entities.Ticket, error) {
	if ticketID == "" || u.Tickets == nil {
		return entities.Ticket{}, nil
	}
	return u.Tickets.GetByID(ctx, companyID, ticketID)
}

// moveTicket applies next to t when the ticket exists and the transition is
// allowed. It reports whether t changed.
func moveTicket(t *entities.Ticket, s entities.Session, next entities.TicketStatus, detail string, now time.Time) bool {
	if t.ID == "" || !t.Status.CanTransitionTo(next) {
		return false
	}
	t.Status = next
	t.History = append(t.History, entities.NewAuditEntry(s, string(next), detail, now))
	t.UpdatedAt = now
	return true
}

func validateQuoteInput(kind entities.QuoteKind, in *QuoteInput) error {
	for i := range in.Items {
		it := &in.Items[i]
		it.Description = strings.TrimSpace(it.Description)
		if it.Type == "" {
			it.Type = entities.ItemTypeProduto
		}
		if it.Description == "" || !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() ||
			(it.Type != entities.ItemTypeProduto && it.Type != entities.ItemTypeServico) {
			return fmt.Errorf("%w: item %d", ErrInvalidQuoteItem, i+1)
		}
	}
	switch in.Payment.Method {
	case "":
		in.Payment.Method = entities.PaymentAVista
	case entities.PaymentAVista, entities.PaymentBoleto:
	case entities.PaymentParcelado:
		if in.Payment.Installments < 2 {
			return ErrInvalidPaymentTerms
		}
	default:
		return ErrInvalidPaymentTerms
	}
	if kind == entities.QuoteKindContract {
		if in.BillingDay < 1 || in.BillingDay > 31 {
			return ErrInvalidBillingDay
		}
		if in.MonthlyValue.IsNegative() {
			return ErrInvalidQuoteItem
		}
	}
	return nil
}

func applyQuoteInput(q *entities.Quote, in QuoteInput) {
	q.Items = in.Items
	q.Payment = in.Payment
	q.ValidUntil = in.ValidUntil
	q.Notes = strings.TrimSpace(in.Notes)
	if t := strings.TrimSpace(in.TicketID); t != "" {
		q.TicketID = t
	}
	if q.Kind == entities.QuoteKindContract {
		q.MonthlyValue = in.MonthlyValue
		q.BillingDay = in.BillingDay
		q.BankID = strings.TrimSpace(in.BankID)
		q.Periodicity = strings.TrimSpace(in.Periodicity)
		q.CoveredEquip = in.CoveredEquip
		q.UncoveredEquip = in.UncoveredEquip
	}
	q.Total = q.ComputeTotal()
}
