package printing

import (
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/extenso"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// QuotePDF lays the quote out on an A4 page.
func (r *Renderer) QuotePDF(q entities.Quote) ([]byte, error) {
	title := "Orçamento " + q.Number
	if q.Kind == entities.QuoteKindContract {
		title = "Proposta de Contrato " + q.Number
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(r.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.pdfHeader(q, title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pdfClient(q.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(pdfItemsHeader())
	m.AddRows(pdfItems(q.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pdfTotals(q)...)

	if q.Kind == entities.QuoteKindContract {
		m.AddRows(pdfContractTerms(q)...)
	}
	if q.Notes != "" {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New(q.Notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate quote %s: %w", q.Number, err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) pdfHeader(q entities.Quote, title string) core.Row {
	issued := q.CreatedAt
	if issued.IsZero() {
		issued = r.now()
	}
	validity := "Validade: " + fallback(formatDatePtr(q.ValidUntil), "-")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.issuer, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Emissão: "+FormatDate(issued), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
			text.New(validity, props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

func pdfClient(c entities.ClientSnapshot) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("CPF/CNPJ: %s   |   %s",
				fallback(c.Document, "-"),
				fallback(formatAddress(c.Address), "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(fmt.Sprintf("Contato: %s   |   %s   |   %s",
				fallback(c.Contact.Name, "-"),
				fallback(c.Contact.Email, "-"),
				fallback(c.Contact.Phone, "-"),
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func pdfItemsHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição", 6, align.Left),
		h("Valor unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func pdfItems(items []entities.QuoteItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(FormatBRL(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(FormatBRL(it.Total()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func pdfTotals(q entities.Quote) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(6),
			col.New(3).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2})),
			col.New(3).Add(text.New(FormatBRL(q.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2})),
		),
		row.New(6).Add(col.New(12).Add(
			text.New("("+extenso.Reais(q.Total)+")", props.Text{Size: 8, Align: align.Right, Color: colorGray, Right: 1}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Pagamento: "+paymentLabel(q.Payment), props.Text{Size: 8, Top: 2}),
		)),
	}
}

func pdfContractTerms(q entities.Quote) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("CONDIÇÕES DO CONTRATO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Mensalidade: %s (%s)", FormatBRL(q.MonthlyValue), extenso.Reais(q.MonthlyValue)), props.Text{Size: 8, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Periodicidade: %s   |   Vencimento: dia %02d", fallback(q.Periodicity, "-"), q.BillingDay), props.Text{Size: 8, Top: 1}),
		)),
	}
	rows = append(rows, equipmentRows("Equipamentos cobertos", q.CoveredEquip)...)
	rows = append(rows, equipmentRows("Equipamentos não cobertos", q.UncoveredEquip)...)
	return rows
}

func equipmentRows(label string, list []string) []core.Row {
	if len(list) == 0 {
		return nil
	}
	rows := []core.Row{row.New(6).Add(col.New(12).Add(
		text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
	))}
	for _, e := range list {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("- "+e, props.Text{Size: 8, Left: 3, Color: colorGray}),
		)))
	}
	return rows
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
