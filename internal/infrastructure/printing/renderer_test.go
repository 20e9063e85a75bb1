package printing

import (
	"bytes"
	"gestao_comercial/internal/domain/entities"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote(kind entities.QuoteKind) entities.Quote {
	valid := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:     "q1",
		Kind:   kind,
		Number: "ORC-240300007",
		Client: entities.ClientSnapshot{
			Name:     "Condomínio <Solar>",
			Document: "12.345.678/0001-90",
			Address:  entities.Address{Street: "Rua A", Number: "10", City: "Recife", State: "PE"},
			Contact:  entities.ContactInfo{Name: "Ana", Email: "ana@solar.com"},
		},
		Items: []entities.QuoteItem{
			{Type: entities.ItemTypeServico, Description: "Manutenção", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("150.25")},
		},
		Payment:    entities.PaymentTerms{Method: entities.PaymentAVista},
		Status:     entities.QuoteStatusEmElaboracao,
		ValidUntil: &valid,
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	q.Total = q.ComputeTotal()
	return q
}

func TestRenderer_QuoteHTML(t *testing.T) {
	r, err := NewRenderer("Elevadores Recife")
	require.NoError(t, err)

	t.Run("equipment quote", func(t *testing.T) {
		out, err := r.QuoteHTML(sampleQuote(entities.QuoteKindEquipment))
		require.NoError(t, err)
		assert.Contains(t, out, "ORC-240300007")
		assert.Contains(t, out, "Condomínio &lt;Solar&gt;")
		assert.Contains(t, out, "R$ 300,50")
		assert.Contains(t, out, "trezentos reais e cinquenta centavos")
		assert.Contains(t, out, "31/03/2024")
		assert.Contains(t, out, "<table class=\"itens\">")
		assert.NotContains(t, out, "{{")
	})

	t.Run("contract quote", func(t *testing.T) {
		q := sampleQuote(entities.QuoteKindContract)
		q.MonthlyValue = decimal.NewFromInt(1000)
		q.BillingDay = 5
		q.Periodicity = "mensal"
		q.CoveredEquip = []string{"Elevador social"}
		out, err := r.QuoteHTML(q)
		require.NoError(t, err)
		assert.Contains(t, out, "Proposta de contrato")
		assert.Contains(t, out, "R$ 1.000,00")
		assert.Contains(t, out, "mil reais")
		assert.Contains(t, out, "<li>Elevador social</li>")
		assert.Contains(t, out, "<p>Nenhum.</p>")
		assert.NotContains(t, out, "{{")
	})
}

func TestRenderer_InvoiceHTML(t *testing.T) {
	r, err := NewRenderer("Elevadores Recife")
	require.NoError(t, err)

	inv := entities.Invoice{
		Number:         "BOL-240300001",
		ReferenceMonth: "2024-03",
		Amount:         decimal.NewFromInt(1000),
		DueDate:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         entities.InvoiceStatusPendente,
		Description:    "Mensalidade",
		Registration:   &entities.BankRegistration{Barcode: "23790.00000"},
	}
	out, err := r.InvoiceHTML(inv)
	require.NoError(t, err)
	assert.Contains(t, out, "BOL-240300001")
	assert.Contains(t, out, "10/03/2024")
	assert.Contains(t, out, "23790.00000")
	assert.True(t, strings.Contains(out, "pendente"))
}

func TestRenderer_QuotePDF(t *testing.T) {
	r, err := NewRenderer("Elevadores Recife")
	require.NoError(t, err)

	for _, kind := range []entities.QuoteKind{entities.QuoteKindEquipment, entities.QuoteKindContract} {
		out, err := r.QuotePDF(sampleQuote(kind))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "kind %s", kind)
	}
}
