package usecase

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/infrastructure/phone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUseCase_CreateEnsuresCostCenter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.clients.Create(ctx, testSession, ClientInput{Name: "  Mercado Bom Preço  "})
	require.NoError(t, err)
	assert.Equal(t, "Mercado Bom Preço", c.Name)
	assert.Equal(t, "CC-MERCADO-BOM-PRECO", c.CostCenterID)

	stored, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "CC-MERCADO-BOM-PRECO", stored.CostCenterID)

	_, err = f.clients.Create(ctx, testSession, ClientInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidClientName)

	_, err = f.clients.Update(ctx, testSession, "missing", ClientInput{Name: "X"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientUseCase_Contacts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.clients = NewClientUseCase(f.clientRepo, f.costCenters, phone.Normalizer{})
	c := f.client(t, "Mercado Bom Preço")

	first, err := f.clients.AddContact(ctx, testSession, c.ID, ContactInput{Name: "Carlos", Phone: "(11) 98765-4321"})
	require.NoError(t, err)
	assert.True(t, first.Primary, "the first contact becomes primary")
	assert.Equal(t, "+5511987654321", first.Phone)

	second, err := f.clients.AddContact(ctx, testSession, c.ID, ContactInput{Name: "Beatriz", Email: "bia@mercado.com", Phone: "ramal 12"})
	require.NoError(t, err)
	assert.False(t, second.Primary)
	assert.Equal(t, "ramal 12", second.Phone)

	client, err := f.clients.SetPrimaryContact(ctx, testSession, c.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ContactInfo{Name: "Beatriz", Email: "bia@mercado.com", Phone: "ramal 12"}, client.Contact)

	contacts, err := f.clients.ListContacts(ctx, testSession, c.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, ct := range contacts {
		assert.Equal(t, ct.ID == second.ID, ct.Primary, ct.Name)
	}

	stored, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beatriz", stored.Contact.Name)

	_, err = f.clients.SetPrimaryContact(ctx, testSession, c.ID, "nobody")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestClientUseCase_Equipments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Mercado Bom Preço")

	_, err := f.clients.AddEquipment(ctx, testSession, c.ID, EquipmentInput{})
	assert.ErrorIs(t, err, ErrInvalidEquipment)

	e, err := f.clients.AddEquipment(ctx, testSession, c.ID, EquipmentInput{Description: "Câmara fria", Manufacturer: "Gelopar"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, e.ClientID)

	list, err := f.clients.ListEquipments(ctx, testSession, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
