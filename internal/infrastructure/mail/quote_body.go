package mail

import (
	"gestao_comercial/internal/infrastructure/printing"
	"gestao_comercial/internal/usecase/interfaces"
)

const quoteBodyTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
  <h2 style="color: #00467f;">Orçamento {{NUMERO}}</h2>
  <p>Prezado(a) {{CLIENTE}},</p>
  <p>Segue em anexo o orçamento <strong>{{NUMERO}}</strong> no valor total de <strong>{{VALOR}}</strong>.</p>
  {{APROVACAO}}
  <p>Ficamos à disposição para quaisquer esclarecimentos.</p>
  <p>Atenciosamente,<br>Equipe Comercial</p>
</body>
</html>`

// QuoteBody renders the fixed HTML email sent with a quote PDF.
func QuoteBody(clientName, quoteNumber, totalValue, approvalLink string) string {
	approval := ""
	if approvalLink != "" {
		approval = printing.Substitute(`<p>Para aprovar, acesse: <a href="{{LINK}}">{{LINK}}</a></p>`,
			printing.Data{Values: map[string]string{"LINK": approvalLink}})
	}
	return printing.Substitute(quoteBodyTemplate, printing.Data{
		Values: map[string]string{
			"NUMERO":  quoteNumber,
			"CLIENTE": clientName,
			"VALOR":   totalValue,
		},
		Fragments: map[string]string{"APROVACAO": approval},
	})
}

// Composer adapts QuoteBody to the relay use case.
type Composer struct{}

var _ interfaces.IMailComposer = Composer{}

func (Composer) QuoteBody(msg interfaces.QuoteEmail) string {
	return QuoteBody(msg.ClientName, msg.QuoteNumber, msg.TotalValue, msg.ApprovalLink)
}
