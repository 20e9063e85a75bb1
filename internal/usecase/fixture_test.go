package usecase

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/memory"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/infrastructure/lock"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testSession = entities.Session{CompanyID: "emp-1", UserID: "user-1", UserName: "Ana Souza"}

// fixture wires every workflow over one in-memory store.
type fixture struct {
	store       *memory.Store
	clientRepo  *memory.ClientRepository
	quoteRepo   *memory.QuoteRepository
	saleRepo    *memory.SaleRepository
	contractRep *memory.ContractRepository
	invoiceRepo *memory.InvoiceRepository
	recRepo     *memory.ReceivableRepository
	ccRepo      *memory.CostCenterRepository
	ticketRepo  *memory.TicketRepository
	uow         *memory.UnitOfWork

	costCenters *CostCenterUseCase
	clients     *ClientUseCase
	quotes      *QuoteUseCase
	contracts   *ContractUseCase
	invoices    *InvoiceUseCase
	receivables *ReceivableUseCase
	tickets     *TicketUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	f := &fixture{
		store:       st,
		clientRepo:  memory.NewClientRepository(st),
		quoteRepo:   memory.NewQuoteRepository(st),
		saleRepo:    memory.NewSaleRepository(st),
		contractRep: memory.NewContractRepository(st),
		invoiceRepo: memory.NewInvoiceRepository(st),
		recRepo:     memory.NewReceivableRepository(st),
		ccRepo:      memory.NewCostCenterRepository(st),
		ticketRepo:  memory.NewTicketRepository(st),
		uow:         memory.NewUnitOfWork(st),
	}
	locker := lock.NewLocalLocker()
	banks := memory.NewBankRepository(st)

	f.costCenters = NewCostCenterUseCase(f.ccRepo, f.clientRepo, locker)
	f.clients = NewClientUseCase(f.clientRepo, f.costCenters, nil)
	f.quotes = NewQuoteUseCase(QuoteDeps{
		Quotes:      f.quoteRepo,
		Clients:     f.clientRepo,
		Sales:       f.saleRepo,
		Contracts:   f.contractRep,
		Tickets:     f.ticketRepo,
		Banks:       banks,
		UnitOfWork:  f.uow,
		CostCenters: f.costCenters,
		Locker:      locker,
	})
	f.contracts = NewContractUseCase(f.contractRep, f.clientRepo, f.ccRepo, banks, f.uow, f.costCenters, locker)
	f.invoices = NewInvoiceUseCase(InvoiceDeps{
		Invoices:    f.invoiceRepo,
		Receivables: f.recRepo,
		Contracts:   f.contractRep,
		Sales:       f.saleRepo,
		Clients:     f.clientRepo,
		UnitOfWork:  f.uow,
		CostCenters: f.costCenters,
		Locker:      locker,
	})
	f.receivables = NewReceivableUseCase(f.recRepo, f.invoiceRepo, f.uow)
	f.tickets = NewTicketUseCase(f.ticketRepo, f.clientRepo, locker)
	return f
}

func (f *fixture) client(t *testing.T, name string) entities.Client {
	t.Helper()
	c, err := f.clients.Create(context.Background(), testSession, ClientInput{Name: name, Document: "12.345.678/0001-90"})
	require.NoError(t, err)
	return c
}

func equipmentQuoteInput(clientID string, method entities.PaymentMethod, due *time.Time) QuoteInput {
	return QuoteInput{
		ClientID: clientID,
		Items: []entities.QuoteItem{
			{Type: entities.ItemTypeProduto, Description: "Motor de portão", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("150.25")},
			{Type: entities.ItemTypeServico, Description: "Instalação", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
		},
		Payment: entities.PaymentTerms{Method: method, DueDate: due},
	}
}

// approvedContract creates a contract for the client and approves it.
func (f *fixture) approvedContract(t *testing.T, clientID string, monthly string, day int) entities.Contract {
	t.Helper()
	ctx := context.Background()
	c, err := f.contracts.Create(ctx, testSession, ContractInput{
		ClientID:     clientID,
		CoveredEquip: []string{"Elevador social"},
		MonthlyValue: decimal.RequireFromString(monthly),
		BillingDay:   day,
	})
	require.NoError(t, err)
	c, err = f.contracts.ChangeStatus(ctx, testSession, c.ID, entities.ContractStatusAprovado)
	require.NoError(t, err)
	return c
}
