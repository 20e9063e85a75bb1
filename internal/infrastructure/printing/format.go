package printing

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/money"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL is kept here so templates only depend on this package.
func FormatBRL(d decimal.Decimal) string {
	return money.FormatBRL(d)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

func formatAddress(a entities.Address) string {
	var parts []string
	street := strings.TrimSpace(strings.Join(nonEmpty(a.Street, a.Number), ", "))
	if a.Complement != "" {
		street += " - " + a.Complement
	}
	for _, p := range []string{street, a.Neighborhood, strings.Join(nonEmpty(a.City, a.State), "/"), a.ZipCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func paymentLabel(p entities.PaymentTerms) string {
	switch p.Method {
	case entities.PaymentAVista:
		return "À vista"
	case entities.PaymentParcelado:
		if p.Installments > 1 {
			return "Parcelado em " + decimal.NewFromInt(int64(p.Installments)).String() + "x"
		}
		return "Parcelado"
	case entities.PaymentBoleto:
		if p.DueDate != nil {
			return "Boleto bancário - vencimento " + FormatDate(*p.DueDate)
		}
		return "Boleto bancário"
	}
	return string(p.Method)
}
