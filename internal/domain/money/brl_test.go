package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 999,90", FormatBRL(decimal.RequireFromString("999.9")))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 1.000.000,10", FormatBRL(decimal.RequireFromString("1000000.1")))
	assert.Equal(t, "-R$ 15,00", FormatBRL(decimal.NewFromInt(-15)))
}
