package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	mock_interfaces "gestao_comercial/internal/usecase/interfaces/mocks"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers are shared by both kinds", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")

		q1, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		require.NoError(t, err)
		in := equipmentQuoteInput(c.ID, entities.PaymentAVista, nil)
		in.BillingDay = 10
		q2, err := f.quotes.Create(ctx, testSession, entities.QuoteKindContract, in)
		require.NoError(t, err)

		yymm := time.Now().UTC().Format("0601")
		assert.Equal(t, "ORC-"+yymm+"00001", q1.Number)
		assert.Equal(t, "ORC-"+yymm+"00002", q2.Number)
		assert.Equal(t, entities.QuoteStatusEmElaboracao, q1.Status)
		assert.True(t, decimal.RequireFromString("500.50").Equal(q1.Total))
		assert.Equal(t, "Condomínio Solar", q1.Client.Name)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")

		_, err := f.quotes.Create(ctx, testSession, "servico", equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		assert.ErrorIs(t, err, ErrInvalidQuoteKind)

		bad := equipmentQuoteInput(c.ID, entities.PaymentAVista, nil)
		bad.Items[0].Quantity = decimal.Zero
		_, err = f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, bad)
		assert.ErrorIs(t, err, ErrInvalidQuoteItem)

		_, err = f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentParcelado, nil))
		assert.ErrorIs(t, err, ErrInvalidPaymentTerms)

		_, err = f.quotes.Create(ctx, testSession, entities.QuoteKindContract, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		assert.ErrorIs(t, err, ErrInvalidBillingDay)

		_, err = f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput("missing", entities.PaymentAVista, nil))
		assert.ErrorIs(t, err, ErrClientNotFound)

		_, err = f.quotes.Create(ctx, entities.Session{}, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestQuoteUseCase_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("creates exactly one sale", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		require.NoError(t, err)

		res, err := f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
		require.NoError(t, err)
		assert.Nil(t, res.Contract)
		assert.Equal(t, entities.QuoteStatusAprovado, res.Quote.Status)
		assert.True(t, res.Quote.SaleGenerated)
		assert.Equal(t, res.Sale.ID, res.Quote.SaleID)

		_, err = f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
		assert.ErrorIs(t, err, ErrQuoteAlreadyApproved)

		sales, err := f.saleRepo.List(ctx, testSession.CompanyID)
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, q.ID, sales[0].QuoteID)
		assert.Equal(t, entities.SaleStatusPendenteFaturamento, sales[0].Status)

		stored, err := f.quoteRepo.GetByID(ctx, testSession.CompanyID, entities.QuoteKindEquipment, q.ID)
		require.NoError(t, err)
		assert.True(t, stored.SaleGenerated)

		recs, err := f.recRepo.ListBySaleID(ctx, testSession.CompanyID, sales[0].ID)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, entities.ReceivableStatusPendente, recs[0].Status)

		client, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.True(t, client.HasContract)
	})

	t.Run("concurrent approvals create one sale", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		require.NoError(t, err)

		gate := &gatedSales{ISaleRepository: f.saleRepo}
		gate.arrived.Add(2)
		f.quotes.Sales = gate

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
			}(i)
		}
		wg.Wait()

		var ok, changed int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrQuoteChanged):
				changed++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, changed)

		sales, err := f.saleRepo.List(ctx, testSession.CompanyID)
		require.NoError(t, err)
		require.Len(t, sales, 1)
		recs, err := f.recRepo.ListBySaleID(ctx, testSession.CompanyID, sales[0].ID)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("failed unit of work keeps the quote status", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentAVista, nil))
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		uow.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("transaction cancelled"))
		f.quotes.UnitOfWork = uow

		_, err = f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction cancelled")

		stored, err := f.quoteRepo.GetByID(ctx, testSession.CompanyID, entities.QuoteKindEquipment, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusEmElaboracao, stored.Status)
		assert.False(t, stored.SaleGenerated)

		sales, err := f.saleRepo.List(ctx, testSession.CompanyID)
		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("quote without items", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		in := equipmentQuoteInput(c.ID, entities.PaymentAVista, nil)
		in.Items = nil
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, in)
		require.NoError(t, err)

		_, err = f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
		assert.ErrorIs(t, err, ErrQuoteWithoutItems)
	})

	t.Run("contract quote creates the contract and activates the client", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Condomínio Solar")
		ticket, err := f.tickets.Create(ctx, testSession, TicketInput{ClientID: c.ID, Description: "Manutenção mensal"})
		require.NoError(t, err)

		in := equipmentQuoteInput(c.ID, entities.PaymentBoleto, nil)
		in.TicketID = ticket.ID
		in.MonthlyValue = decimal.NewFromInt(1000)
		in.BillingDay = 10
		in.CoveredEquip = []string{"Elevador social"}
		q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindContract, in)
		require.NoError(t, err)

		res, err := f.quotes.Approve(ctx, testSession, entities.QuoteKindContract, q.ID)
		require.NoError(t, err)
		require.NotNil(t, res.Contract)
		assert.Equal(t, "CTR-"+time.Now().UTC().Format("0601")+"00001", res.Contract.Number)
		assert.Equal(t, entities.ContractStatusAprovado, res.Contract.Status)
		assert.Equal(t, entities.ContractSituationAtivo, res.Contract.Situation)
		assert.Equal(t, res.Contract.ID, res.Quote.ContractID)

		stored, err := f.contractRep.GetByID(ctx, testSession.CompanyID, res.Contract.ID)
		require.NoError(t, err)
		assert.Equal(t, q.ID, stored.QuoteID)

		client, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientContractAtivo, client.ContractStatus)
		assert.Equal(t, "CC-CONDOMINIO-SOLAR", client.CostCenterID)

		tk, err := f.ticketRepo.GetByID(ctx, testSession.CompanyID, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusOrcamentoAprovado, tk.Status)
	})
}

func TestQuoteUseCase_Reject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Condomínio Solar")
	ticket, err := f.tickets.Create(ctx, testSession, TicketInput{ClientID: c.ID, Description: "Portão travando"})
	require.NoError(t, err)
	in := equipmentQuoteInput(c.ID, entities.PaymentAVista, nil)
	in.TicketID = ticket.ID
	q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, in)
	require.NoError(t, err)

	_, err = f.quotes.Reject(ctx, testSession, entities.QuoteKindEquipment, q.ID, "  ", false)
	assert.ErrorIs(t, err, ErrInvalidRejectReason)

	rejected, err := f.quotes.Reject(ctx, testSession, entities.QuoteKindEquipment, q.ID, "preço acima do orçado", true)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusReprovado, rejected.Status)
	assert.Equal(t, "preço acima do orçado", rejected.RejectReason)

	tk, err := f.ticketRepo.GetByID(ctx, testSession.CompanyID, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusPendenteRetorno, tk.Status)

	// editing a rejected quote reopens it
	reopened, err := f.quotes.Update(ctx, testSession, entities.QuoteKindEquipment, q.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusEmElaboracao, reopened.Status)
	assert.Empty(t, reopened.RejectReason)
}

func TestQuoteUseCase_ExpiryOnLoad(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Condomínio Solar")

	past := time.Now().UTC().Add(-48 * time.Hour)
	in := equipmentQuoteInput(c.ID, entities.PaymentAVista, nil)
	in.ValidUntil = &past
	q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, in)
	require.NoError(t, err)
	_, err = f.quotes.MarkSent(ctx, testSession, entities.QuoteKindEquipment, q.ID)
	require.NoError(t, err)

	loaded, err := f.quotes.GetByID(ctx, testSession, entities.QuoteKindEquipment, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusExpirado, loaded.Status)

	stored, err := f.quoteRepo.GetByID(ctx, testSession.CompanyID, entities.QuoteKindEquipment, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusExpirado, stored.Status)

	_, err = f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
	assert.ErrorIs(t, err, ErrInvalidQuoteTransition)
}

// gatedSales holds every GetByQuoteID caller until all expected callers have
// read, so they all see the quote without a sale.
type gatedSales struct {
	interfaces.ISaleRepository
	arrived sync.WaitGroup
}

func (g *gatedSales) GetByQuoteID(ctx context.Context, companyID, quoteID string) (entities.Sale, error) {
	g.arrived.Done()
	g.arrived.Wait()
	return g.ISaleRepository.GetByQuoteID(ctx, companyID, quoteID)
}
