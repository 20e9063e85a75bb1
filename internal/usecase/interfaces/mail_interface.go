package interfaces

import "context"

// QuoteEmail is the payload accepted by the mail relay.
type QuoteEmail struct {
	To           string `json:"to"`
	Subject      string `json:"subject"`
	ClientName   string `json:"clienteNome"`
	QuoteNumber  string `json:"numeroOrcamento"`
	TotalValue   string `json:"valorTotal"`
	PDFBase64    string `json:"pdfBase64"`
	ApprovalLink string `json:"linkAprovacao,omitempty"`
}

// IMailRelayClient posts quote emails to the mail relay service.
type IMailRelayClient interface {
	SendQuote(ctx context.Context, msg QuoteEmail) (messageID string, err error)
}

// OutgoingMail is a single SMTP message built by the mail relay.
type OutgoingMail struct {
	MessageID      string
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// IMailSender delivers messages over SMTP.
type IMailSender interface {
	Send(ctx context.Context, msg OutgoingMail) error
}

// IMailComposer builds the fixed HTML body sent with a quote.
type IMailComposer interface {
	QuoteBody(msg QuoteEmail) string
}
