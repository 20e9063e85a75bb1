package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteStatus_Transitions(t *testing.T) {
	assert.True(t, QuoteStatusEmElaboracao.CanTransitionTo(QuoteStatusEnviado))
	assert.True(t, QuoteStatusEnviado.CanTransitionTo(QuoteStatusExpirado))
	assert.False(t, QuoteStatusAprovado.CanTransitionTo(QuoteStatusAprovado))
	assert.False(t, QuoteStatusAprovado.CanTransitionTo(QuoteStatusReprovado))
	assert.False(t, QuoteStatusExpirado.CanTransitionTo(QuoteStatusAprovado))
	assert.False(t, QuoteStatus("desconhecido").Valid())
}

func TestQuote_TotalAndExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	q := Quote{
		Status:     QuoteStatusEnviado,
		ValidUntil: &past,
		Items: []QuoteItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.50")},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("100")},
		},
	}

	assert.True(t, q.ComputeTotal().Equal(decimal.RequireFromString("121")))
	assert.True(t, q.IsExpired(now))

	q.Status = QuoteStatusEmElaboracao
	assert.False(t, q.IsExpired(now))
}

func TestDeriveClientContractStatus(t *testing.T) {
	approved := Contract{ID: "a", Status: ContractStatusAprovado, Situation: ContractSituationAtivo}
	cancelled := Contract{ID: "b", Status: ContractStatusCancelado}

	t.Run("any in force keeps client active", func(t *testing.T) {
		got := DeriveClientContractStatus([]Contract{approved, cancelled}, cancelled, ClientContractNone)
		assert.Equal(t, ClientContractAtivo, got)
		got = DeriveClientContractStatus([]Contract{approved, cancelled}, approved, ClientContractCancelado)
		assert.Equal(t, ClientContractAtivo, got)
	})

	t.Run("only terminal contracts cancel the client", func(t *testing.T) {
		got := DeriveClientContractStatus([]Contract{cancelled}, cancelled, ClientContractAtivo)
		assert.Equal(t, ClientContractCancelado, got)
	})

	t.Run("closed situation is terminal", func(t *testing.T) {
		closed := Contract{Status: ContractStatusAprovado, Situation: ContractSituationEncerrado}
		got := DeriveClientContractStatus([]Contract{closed}, closed, ClientContractAtivo)
		assert.Equal(t, ClientContractCancelado, got)
	})

	t.Run("non terminal edit leaves status unchanged", func(t *testing.T) {
		draft := Contract{Status: ContractStatusEnviadoAoCliente}
		got := DeriveClientContractStatus([]Contract{draft}, draft, ClientContractNone)
		assert.Equal(t, ClientContractNone, got)
	})
}

func TestInvoice_IsOverdue(t *testing.T) {
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	inv := Invoice{Status: InvoiceStatusPendente, DueDate: due}

	assert.False(t, inv.IsOverdue(due.Add(20*time.Hour)))
	assert.True(t, inv.IsOverdue(due.Add(48*time.Hour)))

	inv.Status = InvoiceStatusPago
	assert.False(t, inv.IsOverdue(due.Add(48*time.Hour)))
}

func TestClient_SnapshotUsesPrimaryContact(t *testing.T) {
	c := Client{ID: "c1", Name: "ACME", Contact: ContactInfo{Name: "Old"}}
	snap := c.Snapshot([]Contact{
		{Name: "Ana", Email: "ana@acme.com"},
		{Name: "Bia", Primary: true, Phone: "+5511999990000"},
	})

	assert.Equal(t, "Bia", snap.Contact.Name)
	assert.Len(t, snap.Contacts, 2)
}
