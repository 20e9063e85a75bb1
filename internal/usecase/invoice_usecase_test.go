package usecase

import (
	"bytes"
	"context"
	"gestao_comercial/internal/domain/entities"
	mock_interfaces "gestao_comercial/internal/usecase/interfaces/mocks"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func contractItem(id string) GenerationItem {
	return GenerationItem{Origin: entities.InvoiceOriginContract, ID: id}
}

func TestInvoiceUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers follow selection order", func(t *testing.T) {
		f := newFixture(t)
		a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 31)
		b := f.approvedContract(t, f.client(t, "Clínica Vida").ID, "500.00", 10)

		res, err := f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{contractItem(b.ID), contractItem(a.ID)})
		require.NoError(t, err)
		require.Len(t, res.Invoices, 2)

		assert.Equal(t, "BOL-260100001", res.Invoices[0].Number)
		assert.Equal(t, b.ID, res.Invoices[0].ContractID)
		assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), res.Invoices[0].DueDate)
		assert.Equal(t, "BOL-260100002", res.Invoices[1].Number)
		assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), res.Invoices[1].DueDate)
		assert.Equal(t, "CC-RESIDENCIAL-IPE", res.Invoices[1].CostCenterID)

		for _, inv := range res.Invoices {
			recs, err := f.recRepo.ListByInvoiceID(ctx, testSession.CompanyID, inv.ID)
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, "2026-01", recs[0].ReferenceMonth)
			assert.True(t, inv.Amount.Equal(recs[0].Amount))
		}

		candidates, err := f.invoices.ListCandidates(ctx, testSession, "2026-01")
		require.NoError(t, err)
		assert.Empty(t, candidates)

		_, err = f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{contractItem(a.ID)})
		assert.ErrorIs(t, err, ErrItemNotEligible)
	})

	t.Run("continues the sequence of the month", func(t *testing.T) {
		f := newFixture(t)
		a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 5)
		b := f.approvedContract(t, f.client(t, "Clínica Vida").ID, "500.00", 5)

		_, err := f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{contractItem(a.ID)})
		require.NoError(t, err)
		res, err := f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{contractItem(b.ID)})
		require.NoError(t, err)
		assert.Equal(t, "BOL-260100002", res.Invoices[0].Number)

		feb, err := f.invoices.Generate(ctx, testSession, "2026-02", []GenerationItem{contractItem(b.ID)})
		require.NoError(t, err)
		assert.Equal(t, "BOL-260200001", feb.Invoices[0].Number)
	})

	t.Run("first failure stops the run", func(t *testing.T) {
		f := newFixture(t)
		a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 5)
		b := f.approvedContract(t, f.client(t, "Clínica Vida").ID, "500.00", 5)

		res, err := f.invoices.Generate(ctx, testSession, "2026-03",
			[]GenerationItem{contractItem(a.ID), contractItem("ghost"), contractItem(b.ID)})
		assert.ErrorIs(t, err, ErrContractNotFound)
		require.Len(t, res.Invoices, 1)
		assert.Equal(t, "BOL-260300001", res.Invoices[0].Number)

		stored, err := f.invoiceRepo.ListByMonth(ctx, testSession.CompanyID, "2026-03")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("input validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.invoices.Generate(ctx, testSession, "2026-13", []GenerationItem{contractItem("x")})
		assert.ErrorIs(t, err, ErrInvalidMonth)
		_, err = f.invoices.Generate(ctx, testSession, "2026-01", nil)
		assert.ErrorIs(t, err, ErrNoGenerationItems)
		_, err = f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{{Origin: "avulso", ID: "x"}})
		assert.ErrorIs(t, err, ErrInvalidGenerationItem)
	})
}

func TestInvoiceUseCase_SaleLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Oficina Boa Vista")

	due := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	q, err := f.quotes.Create(ctx, testSession, entities.QuoteKindEquipment, equipmentQuoteInput(c.ID, entities.PaymentBoleto, &due))
	require.NoError(t, err)
	approval, err := f.quotes.Approve(ctx, testSession, entities.QuoteKindEquipment, q.ID)
	require.NoError(t, err)

	candidates, err := f.invoices.ListCandidates(ctx, testSession, "2026-01")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, entities.InvoiceOriginSale, candidates[0].Origin)
	assert.Equal(t, due, candidates[0].DueDate)
	assert.True(t, decimal.RequireFromString("500.50").Equal(candidates[0].Amount))

	res, err := f.invoices.Generate(ctx, testSession, "2026-01",
		[]GenerationItem{{Origin: entities.InvoiceOriginSale, ID: approval.Sale.ID}})
	require.NoError(t, err)
	inv := res.Invoices[0]
	assert.Equal(t, "BOL-260100001", inv.Number)

	sale, err := f.saleRepo.GetByID(ctx, testSession.CompanyID, approval.Sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SaleStatusFaturado, sale.Status)
	assert.Equal(t, inv.ID, sale.InvoiceID)

	recs, err := f.recRepo.ListBySaleID(ctx, testSession.CompanyID, sale.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1, "the approval receivable is linked, not duplicated")
	assert.Equal(t, inv.ID, recs[0].InvoiceID)

	t.Run("delete removes the receivable and reopens the sale", func(t *testing.T) {
		require.NoError(t, f.invoices.Delete(ctx, testSession, inv.ID))

		_, err := f.invoices.GetByID(ctx, testSession, inv.ID)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)

		left, err := f.recRepo.ListByInvoiceID(ctx, testSession.CompanyID, inv.ID)
		require.NoError(t, err)
		assert.Empty(t, left)

		sale, err := f.saleRepo.GetByID(ctx, testSession.CompanyID, approval.Sale.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.SaleStatusPendenteFaturamento, sale.Status)
		assert.Empty(t, sale.InvoiceID)
	})
}

func TestInvoiceUseCase_StatusAndSettlement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 5)
	b := f.approvedContract(t, f.client(t, "Clínica Vida").ID, "500.00", 5)
	res, err := f.invoices.Generate(ctx, testSession, "2026-01", []GenerationItem{contractItem(a.ID), contractItem(b.ID)})
	require.NoError(t, err)

	t.Run("open invoices past due load as atrasado", func(t *testing.T) {
		inv, err := f.invoices.GetByID(ctx, testSession, res.Invoices[0].ID)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusAtrasado, inv.Status)

		stored, err := f.invoiceRepo.GetByID(ctx, testSession.CompanyID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusAtrasado, stored.Status)
	})

	t.Run("paying settles the receivable", func(t *testing.T) {
		paid, err := f.invoices.ChangeStatus(ctx, testSession, res.Invoices[0].ID, entities.InvoiceStatusPago)
		require.NoError(t, err)
		assert.NotNil(t, paid.PaidAt)

		recs, err := f.recRepo.ListByInvoiceID(ctx, testSession.CompanyID, paid.ID)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, entities.ReceivableStatusRecebido, recs[0].Status)

		assert.ErrorIs(t, f.invoices.Delete(ctx, testSession, paid.ID), ErrInvoiceNotDeletable)

		_, err = f.invoices.ChangeStatus(ctx, testSession, paid.ID, entities.InvoiceStatusCancelado)
		assert.ErrorIs(t, err, ErrInvalidInvoiceTransition)
	})

	t.Run("settling the receivable pays the invoice", func(t *testing.T) {
		recs, err := f.recRepo.ListByInvoiceID(ctx, testSession.CompanyID, res.Invoices[1].ID)
		require.NoError(t, err)
		require.Len(t, recs, 1)

		settled, err := f.receivables.Settle(ctx, testSession, recs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ReceivableStatusRecebido, settled.Status)

		inv, err := f.invoiceRepo.GetByID(ctx, testSession.CompanyID, res.Invoices[1].ID)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPago, inv.Status)

		_, err = f.receivables.Settle(ctx, testSession, recs[0].ID)
		assert.ErrorIs(t, err, ErrReceivableNotPending)

		received, err := f.receivables.List(ctx, testSession, ReceivableFilter{Month: "2026-01", Status: entities.ReceivableStatusRecebido})
		require.NoError(t, err)
		assert.Len(t, received, 2)
	})
}

func TestInvoiceUseCase_RegisterWithBank(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 5)
	res, err := f.invoices.Generate(ctx, testSession, "2099-05", []GenerationItem{contractItem(a.ID)})
	require.NoError(t, err)
	id := res.Invoices[0].ID

	_, err = f.invoices.RegisterWithBank(ctx, testSession, id)
	assert.ErrorIs(t, err, ErrBankGatewayNotConfigured)

	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIBankSlipGateway(ctrl)
	gateway.EXPECT().RegisterBoleto(gomock.Any(), gomock.Any()).
		Return(entities.BankRegistration{GatewayID: "mp-991", Barcode: "23790.00000", Status: "pending"}, nil)
	f.invoices.Gateway = gateway

	inv, err := f.invoices.RegisterWithBank(ctx, testSession, id)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusEnviadoBanco, inv.Status)
	require.NotNil(t, inv.Registration)
	assert.Equal(t, "mp-991", inv.Registration.GatewayID)

	_, err = f.invoices.RegisterWithBank(ctx, testSession, id)
	assert.ErrorIs(t, err, ErrInvoiceAlreadyRegistered)
}

func TestInvoiceUseCase_ExportXLSX(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.approvedContract(t, f.client(t, "Residencial Ipê").ID, "800.00", 5)
	_, err := f.invoices.Generate(ctx, testSession, "2099-05", []GenerationItem{contractItem(a.ID)})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, f.invoices.ExportXLSX(ctx, testSession, "2099-05", &buf), ErrExporterNotConfigured)

	ctrl := gomock.NewController(t)
	exporter := mock_interfaces.NewMockIInvoiceExporter(ctrl)
	exporter.EXPECT().ExportInvoices(&buf, "2099-05", gomock.Len(1)).Return(nil)
	f.invoices.Exporter = exporter

	require.NoError(t, f.invoices.ExportXLSX(ctx, testSession, "2099-05", &buf))
}
