package extenso

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReais(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "zero reais"},
		{"1", "um real"},
		{"1.01", "um real e um centavo"},
		{"0.5", "cinquenta centavos"},
		{"100", "cem reais"},
		{"101", "cento e um reais"},
		{"1000", "mil reais"},
		{"1100", "mil e cem reais"},
		{"2003", "dois mil e três reais"},
		{"1250.75", "mil duzentos e cinquenta reais e setenta e cinco centavos"},
		{"1000000", "um milhão de reais"},
		{"2500000", "dois milhões e quinhentos mil reais"},
		{"3000001", "três milhões e um reais"},
		{"-15", "menos quinze reais"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Reais(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestNumber(t *testing.T) {
	words, round := Number(999)
	assert.Equal(t, "novecentos e noventa e nove", words)
	assert.False(t, round)

	words, round = Number(2000000000)
	assert.Equal(t, "dois bilhões", words)
	assert.True(t, round)
}
