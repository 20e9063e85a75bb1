package usecase

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostCenterUseCase_EnsureForClient(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent per client name", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "São José Ltda.")

		first, err := f.costCenters.EnsureForClient(ctx, testSession, c)
		require.NoError(t, err)
		second, err := f.costCenters.EnsureForClient(ctx, testSession, c)
		require.NoError(t, err)

		assert.Equal(t, "CC-SAO-JOSE-LTDA", first.ID)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entities.ClientsGroupCode, first.GroupID)

		all, err := f.costCenters.List(ctx, testSession)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("reactivates and writes back onto the client", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Padaria Central")

		_, err := f.costCenters.SetActive(ctx, testSession, "CC-PADARIA-CENTRAL", false)
		require.NoError(t, err)

		stored, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		stored.CostCenterID = ""
		_, err = f.clientRepo.Update(ctx, stored)
		require.NoError(t, err)

		cc, err := f.costCenters.EnsureForClient(ctx, testSession, stored)
		require.NoError(t, err)
		assert.True(t, cc.Active)

		reloaded, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "CC-PADARIA-CENTRAL", reloaded.CostCenterID)
	})

	t.Run("name without code characters", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.costCenters.EnsureForClient(ctx, testSession, entities.Client{ID: "c-1", Name: "***"})
		assert.ErrorIs(t, err, ErrInvalidCostCenterName)
	})

	t.Run("unknown cost center", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.costCenters.SetActive(ctx, testSession, "CC-NADA", true)
		assert.ErrorIs(t, err, ErrCostCenterNotFound)
	})
}
