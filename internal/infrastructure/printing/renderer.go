// Package printing renders quotes and invoices as HTML (placeholder
// templates) and quotes as PDF (maroto).
package printing

import (
	"embed"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/extenso"
	"gestao_comercial/internal/usecase/interfaces"
	"html"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	equipmentQuoteTemplate = "templates/orcamento_equipamento.html"
	contractQuoteTemplate  = "templates/orcamento_contrato.html"
	invoiceTemplate        = "templates/boleto.html"
)

// Renderer implements the print and PDF outputs of the commercial module.
type Renderer struct {
	issuer    string
	templates map[string]string
	now       func() time.Time
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

// NewRenderer loads the embedded templates. issuer is printed as the header.
func NewRenderer(issuer string) (*Renderer, error) {
	r := &Renderer{issuer: issuer, templates: map[string]string{}, now: time.Now}
	for _, name := range []string{equipmentQuoteTemplate, contractQuoteTemplate, invoiceTemplate} {
		b, err := templateFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", name, err)
		}
		r.templates[name] = string(b)
	}
	return r, nil
}

func (r *Renderer) QuoteHTML(q entities.Quote) (string, error) {
	tpl := equipmentQuoteTemplate
	if q.Kind == entities.QuoteKindContract {
		tpl = contractQuoteTemplate
	}
	return Substitute(r.templates[tpl], r.quoteData(q)), nil
}

func (r *Renderer) InvoiceHTML(inv entities.Invoice) (string, error) {
	barcode := ""
	if inv.Registration != nil {
		barcode = inv.Registration.Barcode
	}
	data := Data{Values: map[string]string{
		"EMPRESA":           r.issuer,
		"NUMERO":            inv.Number,
		"MES_REFERENCIA":    inv.ReferenceMonth,
		"VENCIMENTO":        FormatDate(inv.DueDate),
		"VALOR":             FormatBRL(inv.Amount),
		"VALOR_EXTENSO":     extenso.Reais(inv.Amount),
		"CLIENTE_NOME":      inv.Client.Name,
		"CLIENTE_DOCUMENTO": inv.Client.Document,
		"CLIENTE_ENDERECO":  formatAddress(inv.Client.Address),
		"DESCRICAO":         inv.Description,
		"LINHA_DIGITAVEL":   barcode,
		"STATUS":            string(inv.Status),
	}}
	return Substitute(r.templates[invoiceTemplate], data), nil
}

func (r *Renderer) quoteData(q entities.Quote) Data {
	issued := q.CreatedAt
	if issued.IsZero() {
		issued = r.now()
	}
	values := map[string]string{
		"EMPRESA":           r.issuer,
		"NUMERO":            q.Number,
		"DATA":              FormatDate(issued),
		"VALIDADE":          formatDatePtr(q.ValidUntil),
		"CLIENTE_NOME":      q.Client.Name,
		"CLIENTE_DOCUMENTO": q.Client.Document,
		"CLIENTE_ENDERECO":  formatAddress(q.Client.Address),
		"CONTATO_NOME":      q.Client.Contact.Name,
		"CONTATO_EMAIL":     q.Client.Contact.Email,
		"CONTATO_TELEFONE":  q.Client.Contact.Phone,
		"VALOR_TOTAL":       FormatBRL(q.Total),
		"VALOR_EXTENSO":     extenso.Reais(q.Total),
		"FORMA_PAGAMENTO":   paymentLabel(q.Payment),
		"OBSERVACOES":       q.Notes,
	}
	fragments := map[string]string{
		"TABELA_ITENS": itemsTable(q.Items),
	}
	if q.Kind == entities.QuoteKindContract {
		values["VALOR_MENSAL"] = FormatBRL(q.MonthlyValue)
		values["VALOR_MENSAL_EXTENSO"] = extenso.Reais(q.MonthlyValue)
		values["DIA_VENCIMENTO"] = fmt.Sprintf("%02d", q.BillingDay)
		values["PERIODICIDADE"] = q.Periodicity
		fragments["EQUIPAMENTOS_COBERTOS"] = htmlList(q.CoveredEquip)
		fragments["EQUIPAMENTOS_NAO_COBERTOS"] = htmlList(q.UncoveredEquip)
	}
	return Data{Values: values, Fragments: fragments}
}

func itemsTable(items []entities.QuoteItem) string {
	var b strings.Builder
	b.WriteString(`<table class="itens"><thead><tr><th>Descrição</th><th>Tipo</th><th class="direita">Qtd.</th><th class="direita">Valor unit.</th><th class="direita">Subtotal</th></tr></thead><tbody>`)
	for _, it := range items {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td class="direita">%s</td><td class="direita">%s</td><td class="direita">%s</td></tr>`,
			html.EscapeString(it.Description), html.EscapeString(string(it.Type)), it.Quantity.String(), FormatBRL(it.UnitPrice), FormatBRL(it.Total()))
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func htmlList(values []string) string {
	if len(values) == 0 {
		return "<p>Nenhum.</p>"
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, v := range values {
		b.WriteString("<li>" + html.EscapeString(v) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
