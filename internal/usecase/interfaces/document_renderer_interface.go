package interfaces

import (
	"gestao_comercial/internal/domain/entities"
	"io"
)

// IDocumentRenderer produces the printable documents of the commercial module.
type IDocumentRenderer interface {
	QuoteHTML(q entities.Quote) (string, error)
	QuotePDF(q entities.Quote) ([]byte, error)
	InvoiceHTML(inv entities.Invoice) (string, error)
}

// IInvoiceExporter writes a month of invoices as a spreadsheet.
type IInvoiceExporter interface {
	ExportInvoices(w io.Writer, month string, invoices []entities.Invoice) error
}
