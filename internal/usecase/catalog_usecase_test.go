package usecase

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/memory"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	uc := NewCatalogUseCase(memory.NewBankRepository(st), memory.NewProductRepository(st))

	_, err := uc.CreateBank(ctx, testSession, BankInput{Code: "237"})
	assert.ErrorIs(t, err, ErrInvalidBankName)

	bank, err := uc.CreateBank(ctx, testSession, BankInput{Name: " Bradesco ", Code: "237", Agency: "1234", Account: "56789-0"})
	require.NoError(t, err)
	assert.Equal(t, "Bradesco", bank.Name)

	got, err := uc.GetBank(ctx, testSession, bank.ID)
	require.NoError(t, err)
	assert.Equal(t, "237", got.Code)

	_, err = uc.GetBank(ctx, testSession, "other")
	assert.ErrorIs(t, err, ErrBankNotFound)

	_, err = uc.CreateProduct(ctx, testSession, ProductInput{Name: "Cabo de aço", UnitPrice: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, ErrInvalidProductPrice)

	p, err := uc.CreateProduct(ctx, testSession, ProductInput{Name: "Cabo de aço", UnitPrice: decimal.RequireFromString("89.90")})
	require.NoError(t, err)

	products, err := uc.ListProducts(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)
	assert.True(t, decimal.RequireFromString("89.9").Equal(products[0].UnitPrice))
}
