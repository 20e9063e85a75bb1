// Package extenso spells Brazilian Real amounts in Portuguese words, as printed
// on quotes, contracts and invoices.
package extenso

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	units = []string{
		"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	tens     = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	hundreds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}

	scales = []struct{ one, many string }{
		{"", ""},
		{"mil", "mil"},
		{"milhão", "milhões"},
		{"bilhão", "bilhões"},
		{"trilhão", "trilhões"},
	}
)

// Reais returns the amount in words, e.g. 1250.75 ->
// "mil duzentos e cinquenta reais e setenta e cinco centavos".
func Reais(amount decimal.Decimal) string {
	amount = amount.Round(2)
	prefix := ""
	if amount.IsNegative() {
		prefix = "menos "
		amount = amount.Neg()
	}

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Mul(decimal.NewFromInt(100)).IntPart()
	reais := whole.IntPart()

	var parts []string
	if reais > 0 {
		words, round := Number(reais)
		switch {
		case reais == 1:
			parts = append(parts, words+" real")
		case round:
			parts = append(parts, words+" de reais")
		default:
			parts = append(parts, words+" reais")
		}
	}
	if cents > 0 {
		words, _ := Number(cents)
		if cents == 1 {
			parts = append(parts, words+" centavo")
		} else {
			parts = append(parts, words+" centavos")
		}
	}
	if len(parts) == 0 {
		return "zero reais"
	}
	return prefix + strings.Join(parts, " e ")
}

// Number spells a non negative integer. round is true when the number ends in
// a whole million or above ("um milhão de reais").
func Number(n int64) (words string, round bool) {
	if n == 0 {
		return units[0], false
	}

	var groups []int
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, int(v%1000))
	}

	type chunk struct {
		text  string
		value int
	}
	var chunks []chunk
	lowestScale := -1
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		lowestScale = i
		var text string
		switch {
		case i == 0:
			text = belowThousand(g)
		case i == 1 && g == 1:
			text = "mil"
		case g == 1:
			text = "um " + scales[i].one
		default:
			text = belowThousand(g) + " " + scales[i].many
		}
		chunks = append(chunks, chunk{text: text, value: g})
	}

	var b strings.Builder
	for i, c := range chunks {
		if i > 0 {
			last := i == len(chunks)-1
			if last && (c.value < 100 || c.value%100 == 0) {
				b.WriteString(" e ")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(c.text)
	}
	return b.String(), lowestScale >= 2
}

func belowThousand(n int) string {
	if n == 100 {
		return "cem"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		parts = append(parts, units[rest])
	default:
		parts = append(parts, tens[rest/10])
		if rest%10 > 0 {
			parts = append(parts, units[rest%10])
		}
	}
	return strings.Join(parts, " e ")
}
