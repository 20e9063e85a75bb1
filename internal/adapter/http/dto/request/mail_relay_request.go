package request

import "gestao_comercial/internal/usecase/interfaces"

// SendQuoteRequest is the body of POST /api/send-orcamento. Required fields
// are checked by the relay use case so the error names the missing one.
type SendQuoteRequest struct {
	To              string `json:"to"`
	Subject         string `json:"subject"`
	ClienteNome     string `json:"clienteNome"`
	NumeroOrcamento string `json:"numeroOrcamento"`
	ValorTotal      string `json:"valorTotal"`
	PDFBase64       string `json:"pdfBase64"`
	LinkAprovacao   string `json:"linkAprovacao"`
}

func (r SendQuoteRequest) ToMessage() interfaces.QuoteEmail {
	return interfaces.QuoteEmail{
		To:           r.To,
		Subject:      r.Subject,
		ClientName:   r.ClienteNome,
		QuoteNumber:  r.NumeroOrcamento,
		TotalValue:   r.ValorTotal,
		PDFBase64:    r.PDFBase64,
		ApprovalLink: r.LinkAprovacao,
	}
}
