package usecase

import (
	"context"
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

// InvoiceCandidate is one line of the generation screen.
type InvoiceCandidate struct {
	Origin      entities.InvoiceOrigin
	ContractID  string
	SaleID      string
	ClientID    string
	ClientName  string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// GenerationItem selects a contract or a sale to invoice.
type GenerationItem struct {
	Origin entities.InvoiceOrigin
	ID     string
}

// GenerationResult lists the invoices created, in selection order. When
// generation stops on a failure it holds what was committed before it.
type GenerationResult struct {
	Month    string
	Invoices []entities.Invoice
}

// ListCandidates returns the contracts in force that have no open invoice
// for the month and the pending sales paid by boleto.
func (u *InvoiceUseCase) ListCandidates(ctx context.Context, s entities.Session, month string) ([]InvoiceCandidate, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	ref, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	month = strings.TrimSpace(month)

	invoiced, err := u.invoicedContracts(ctx, s.CompanyID, month)
	if err != nil {
		return nil, err
	}
	contracts, err := u.Contracts.List(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}
	sales, err := u.Sales.List(ctx, s.CompanyID)
	if err != nil {
		return nil, err
	}

	var out []InvoiceCandidate
	for _, c := range contracts {
		if !contractBillable(c, invoiced) {
			continue
		}
		out = append(out, contractCandidate(c, ref, month))
	}
	for _, sale := range sales {
		if sale.BillableByInvoice() {
			out = append(out, saleCandidate(sale, ref))
		}
	}
	return out, nil
}

func (u *InvoiceUseCase) invoicedContracts(ctx context.Context, companyID, month string) (map[string]bool, error) {
	existing, err := u.Invoices.ListByMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}
	invoiced := map[string]bool{}
	for _, inv := range existing {
		if inv.ContractID != "" && inv.Status != entities.InvoiceStatusCancelado {
			invoiced[inv.ContractID] = true
		}
	}
	return invoiced, nil
}

func contractBillable(c entities.Contract, invoiced map[string]bool) bool {
	return c.InForce() && c.Situation != entities.ContractSituationSuspenso &&
		c.MonthlyValue.IsPositive() && !invoiced[c.ID]
}

func contractCandidate(c entities.Contract, ref time.Time, month string) InvoiceCandidate {
	return InvoiceCandidate{
		Origin:      entities.InvoiceOriginContract,
		ContractID:  c.ID,
		ClientID:    c.Client.ID,
		ClientName:  c.Client.Name,
		Description: fmt.Sprintf("Contrato %s - mensalidade %s", c.Number, month),
		Amount:      c.MonthlyValue,
		DueDate:     numbering.DueDate(ref, c.BillingDay),
	}
}

func saleCandidate(sale entities.Sale, ref time.Time) InvoiceCandidate {
	due := numbering.DueDate(ref, 0)
	if sale.Payment.DueDate != nil {
		due = *sale.Payment.DueDate
	}
	return InvoiceCandidate{
		Origin:      entities.InvoiceOriginSale,
		SaleID:      sale.ID,
		ClientID:    sale.Client.ID,
		ClientName:  sale.Client.Name,
		Description: "Venda " + sale.QuoteNumber,
		Amount:      sale.Total,
		DueDate:     due,
	}
}

// Generate creates one invoice per item, in selection order, numbering them
// after the highest existing number of the month. Each invoice is committed
// with its receivable (and the billed sale) in its own unit of work; the
// first failure stops the run.
func (u *InvoiceUseCase) Generate(ctx context.Context, s entities.Session, month string, items []GenerationItem) (GenerationResult, error) {
	if err := checkSession(s); err != nil {
		return GenerationResult{}, err
	}
	ref, err := parseMonth(month)
	if err != nil {
		return GenerationResult{}, err
	}
	month = strings.TrimSpace(month)
	if len(items) == 0 {
		return GenerationResult{}, ErrNoGenerationItems
	}
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" || (it.Origin != entities.InvoiceOriginContract && it.Origin != entities.InvoiceOriginSale) {
			return GenerationResult{}, fmt.Errorf("%w: position %d", ErrInvalidGenerationItem, i+1)
		}
	}

	result := GenerationResult{Month: month}
	key := fmt.Sprintf("invoice-number:%s:%s", s.CompanyID, month)
	err = withLock(ctx, u.Locker, key, invoiceLockTTL, func() error {
		run := &generationRun{u: u, s: s, month: month, ref: ref, costCenters: map[string]string{}}
		if err := run.prepare(ctx); err != nil {
			return err
		}
		for _, it := range items {
			inv, err := run.generate(ctx, it)
			if err != nil {
				return err
			}
			result.Invoices = append(result.Invoices, inv)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "invoice").Str("month", month).Int("generated", len(result.Invoices)).Msg("invoice generation stopped")
		return result, err
	}
	log.Info().Str("component", "invoice").Str("month", month).Int("generated", len(result.Invoices)).Msg("invoice generation finished")
	return result, nil
}

type generationRun struct {
	u           *InvoiceUseCase
	s           entities.Session
	month       string
	ref         time.Time
	seq         int
	invoiced    map[string]bool
	costCenters map[string]string // client id -> cost center id
}

func (r *generationRun) prepare(ctx context.Context) error {
	existing, err := r.u.Invoices.ListByMonth(ctx, r.s.CompanyID, r.month)
	if err != nil {
		return err
	}
	numbers := make([]string, 0, len(existing))
	r.invoiced = map[string]bool{}
	for _, inv := range existing {
		numbers = append(numbers, inv.Number)
		if inv.ContractID != "" && inv.Status != entities.InvoiceStatusCancelado {
			r.invoiced[inv.ContractID] = true
		}
	}
	r.seq = numbering.MaxSequence(numbers, numbering.InvoicePrefix, r.ref)
	return nil
}

func (r *generationRun) generate(ctx context.Context, it GenerationItem) (entities.Invoice, error) {
	id := strings.TrimSpace(it.ID)
	if it.Origin == entities.InvoiceOriginContract {
		return r.generateForContract(ctx, id)
	}
	return r.generateForSale(ctx, id)
}

func (r *generationRun) generateForContract(ctx context.Context, id string) (entities.Invoice, error) {
	c, err := r.u.Contracts.GetByID(ctx, r.s.CompanyID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if c.ID == "" {
		return entities.Invoice{}, fmt.Errorf("contract %s: %w", id, ErrContractNotFound)
	}
	if !contractBillable(c, r.invoiced) {
		return entities.Invoice{}, fmt.Errorf("contract %s: %w", c.Number, ErrItemNotEligible)
	}

	cand := contractCandidate(c, r.ref, r.month)
	inv := r.newInvoice(ctx, cand, c.Client)
	inv.BankID = c.BankID
	rec := r.newReceivable(inv)

	err = r.u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.CreateInvoice(inv)
		tx.CreateReceivable(rec)
		return nil
	})
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s for contract %s: %w", inv.Number, c.Number, err)
	}
	r.invoiced[c.ID] = true
	return inv, nil
}

func (r *generationRun) generateForSale(ctx context.Context, id string) (entities.Invoice, error) {
	sale, err := r.u.Sales.GetByID(ctx, r.s.CompanyID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if sale.ID == "" {
		return entities.Invoice{}, fmt.Errorf("sale %s: %w", id, ErrSaleNotFound)
	}
	if !sale.BillableByInvoice() {
		return entities.Invoice{}, fmt.Errorf("sale %s: %w", sale.ID, ErrItemNotEligible)
	}
	receivables, err := r.u.Receivables.ListBySaleID(ctx, r.s.CompanyID, sale.ID)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv := r.newInvoice(ctx, saleCandidate(sale, r.ref), sale.Client)

	var (
		rec    entities.Receivable
		exists bool
	)
	for _, candidate := range receivables {
		if candidate.Status == entities.ReceivableStatusPendente && candidate.InvoiceID == "" {
			rec, exists = candidate, true
			break
		}
	}
	if exists {
		due := inv.DueDate
		rec.InvoiceID = inv.ID
		rec.DueDate = &due
		rec.Amount = inv.Amount
		rec.CostCenterID = inv.CostCenterID
		rec.ReferenceMonth = r.month
		rec.UpdatedAt = inv.CreatedAt
	} else {
		rec = r.newReceivable(inv)
	}

	sale.Status = entities.SaleStatusFaturado
	sale.InvoiceID = inv.ID
	sale.UpdatedAt = inv.CreatedAt

	err = r.u.UnitOfWork.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.CreateInvoice(inv)
		if exists {
			tx.UpdateReceivable(rec)
		} else {
			tx.CreateReceivable(rec)
		}
		tx.UpdateSale(sale)
		return nil
	})
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("invoice %s for sale %s: %w", inv.Number, sale.ID, err)
	}
	return inv, nil
}

func (r *generationRun) newInvoice(ctx context.Context, cand InvoiceCandidate, client entities.ClientSnapshot) entities.Invoice {
	r.seq++
	now := time.Now().UTC()
	return entities.Invoice{
		ID:             uuid.NewString(),
		CompanyID:      r.s.CompanyID,
		Number:         numbering.Format(numbering.InvoicePrefix, r.ref, r.seq),
		ReferenceMonth: r.month,
		Origin:         cand.Origin,
		ContractID:     cand.ContractID,
		SaleID:         cand.SaleID,
		Client:         client,
		Description:    cand.Description,
		Amount:         cand.Amount,
		DueDate:        cand.DueDate,
		Status:         entities.InvoiceStatusPendente,
		CostCenterID:   r.costCenterFor(ctx, client.ID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *generationRun) newReceivable(inv entities.Invoice) entities.Receivable {
	due := inv.DueDate
	return entities.Receivable{
		ID:             uuid.NewString(),
		CompanyID:      inv.CompanyID,
		InvoiceID:      inv.ID,
		SaleID:         inv.SaleID,
		ContractID:     inv.ContractID,
		ClientID:       inv.Client.ID,
		ClientName:     inv.Client.Name,
		Description:    inv.Description,
		Amount:         inv.Amount,
		DueDate:        &due,
		Status:         entities.ReceivableStatusPendente,
		CostCenterID:   inv.CostCenterID,
		ReferenceMonth: inv.ReferenceMonth,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.CreatedAt,
	}
}

// costCenterFor resolves the client cost center once per run. Failures leave
// the invoice without a cost center.
func (r *generationRun) costCenterFor(ctx context.Context, clientID string) string {
	if id, ok := r.costCenters[clientID]; ok {
		return id
	}
	var id string
	client, err := r.u.Clients.GetByID(ctx, r.s.CompanyID, clientID)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("component", "invoice").Str("client_id", clientID).Msg("client lookup for cost center failed")
	case client.CostCenterID != "":
		id = client.CostCenterID
	case client.ID != "" && r.u.CostCenters != nil:
		cc, err := r.u.CostCenters.EnsureForClient(ctx, r.s, client)
		if err != nil {
			log.Warn().Err(err).Str("component", "invoice").Str("client_id", clientID).Msg("cost center ensure failed")
		}
		id = cc.ID
	}
	r.costCenters[clientID] = id
	return id
}
