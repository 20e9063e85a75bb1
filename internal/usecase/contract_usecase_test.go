package usecase

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractUseCase_ClientStatusSync(t *testing.T) {
	ctx := context.Background()

	t.Run("an approved contract keeps the client active whichever contract is edited", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Edifício Aurora")
		approved := f.approvedContract(t, c.ID, "800.00", 5)

		other, err := f.contracts.Create(ctx, testSession, ContractInput{ClientID: c.ID, MonthlyValue: decimal.NewFromInt(300), BillingDay: 15})
		require.NoError(t, err)
		_, err = f.contracts.ChangeStatus(ctx, testSession, other.ID, entities.ContractStatusCancelado)
		require.NoError(t, err)

		client, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientContractAtivo, client.ContractStatus)

		_, err = f.contracts.ChangeSituacao(ctx, testSession, approved.ID, entities.ContractSituationSuspenso)
		require.NoError(t, err)

		client, err = f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientContractAtivo, client.ContractStatus)

		cc, err := f.ccRepo.GetByCode(ctx, testSession.CompanyID, client.CostCenterID)
		require.NoError(t, err)
		assert.True(t, cc.Active)
	})

	t.Run("a single cancelled contract cancels the client", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Edifício Aurora")
		contract, err := f.contracts.Create(ctx, testSession, ContractInput{ClientID: c.ID, MonthlyValue: decimal.NewFromInt(300), BillingDay: 15})
		require.NoError(t, err)

		_, err = f.contracts.ChangeStatus(ctx, testSession, contract.ID, entities.ContractStatusCancelado)
		require.NoError(t, err)

		client, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientContractCancelado, client.ContractStatus)

		cc, err := f.ccRepo.GetByCode(ctx, testSession.CompanyID, client.CostCenterID)
		require.NoError(t, err)
		assert.False(t, cc.Active)
	})

	t.Run("closing the only active contract cancels the client", func(t *testing.T) {
		f := newFixture(t)
		c := f.client(t, "Edifício Aurora")
		contract := f.approvedContract(t, c.ID, "800.00", 5)

		_, err := f.contracts.ChangeSituacao(ctx, testSession, contract.ID, entities.ContractSituationEncerrado)
		require.NoError(t, err)

		client, err := f.clientRepo.GetByID(ctx, testSession.CompanyID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientContractCancelado, client.ContractStatus)
	})
}

func TestContractUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Edifício Aurora")

	_, err := f.contracts.Create(ctx, testSession, ContractInput{ClientID: c.ID, MonthlyValue: decimal.NewFromInt(-1), BillingDay: 5})
	assert.ErrorIs(t, err, ErrInvalidMonthlyValue)

	_, err = f.contracts.Create(ctx, testSession, ContractInput{ClientID: c.ID, MonthlyValue: decimal.NewFromInt(10), BillingDay: 32})
	assert.ErrorIs(t, err, ErrInvalidBillingDay)

	draft, err := f.contracts.Create(ctx, testSession, ContractInput{ClientID: c.ID, MonthlyValue: decimal.NewFromInt(10), BillingDay: 5})
	require.NoError(t, err)
	assert.Equal(t, entities.ContractStatusEmElaboracao, draft.Status)

	_, err = f.contracts.ChangeSituacao(ctx, testSession, draft.ID, entities.ContractSituationSuspenso)
	assert.ErrorIs(t, err, ErrContractNotApproved)

	_, err = f.contracts.ChangeStatus(ctx, testSession, draft.ID, "vigente")
	assert.ErrorIs(t, err, ErrInvalidContractStatus)

	_, err = f.contracts.GetByID(ctx, testSession, "nope")
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestContractUseCase_UpdateAdministrative(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "Edifício Aurora")
	contract := f.approvedContract(t, c.ID, "800.00", 5)

	updated, err := f.contracts.UpdateAdministrative(ctx, testSession, contract.ID, ContractAdminInput{
		MonthlyValue: decimal.RequireFromString("950.00"),
		BillingDay:   20,
		Periodicity:  "mensal",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("950").Equal(updated.MonthlyValue))
	assert.Equal(t, 20, updated.BillingDay)
	assert.Equal(t, []string{"Elevador social"}, updated.CoveredEquip)
}
