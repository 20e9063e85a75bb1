package costcenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Padaria São João", want: "CC-PADARIA-SAO-JOAO"},
		{in: "  açougue   do  Zé  ", want: "CC-ACOUGUE-DO-ZE"},
		{in: "Auto Peças & Cia. Ltda.", want: "CC-AUTO-PECAS-CIA-LTDA"},
		{in: "Condomínio Edifício Três Irmãos", want: "CC-CONDOMINIO-EDIFICIO-TRES-IR"},
		{in: "Loja  - 24h", want: "CC-LOJA-24H"},
		{in: "Supermercado Economia Mais Sul", want: "CC-SUPERMERCADO-ECONOMIA-MAIS-"},
	}
	for _, tc := range cases {
		got := GenerateCode(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.LessOrEqual(t, len(got), MaxCodeLength)
	}
}

func TestGenerateCode_CutKeepsTrailingHyphen(t *testing.T) {
	got := GenerateCode("Supermercado Economia Mais Sul")
	assert.Len(t, got, MaxCodeLength)
	assert.Equal(t, byte('-'), got[MaxCodeLength-1])
}

func TestGenerateCode_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateCode("Clínica Vida"), GenerateCode("clinica   vida"))
}
