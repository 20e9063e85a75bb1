package request

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"

	"github.com/shopspring/decimal"
)

type QuoteItemRequest struct {
	ProductID   string          `json:"produtoId"`
	Type        string          `json:"tipo" binding:"required,oneof=produto servico"`
	Description string          `json:"descricao" binding:"required"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"valorUnitario"`
}

type PaymentRequest struct {
	Method       string `json:"forma" binding:"required,oneof=a_vista parcelado boleto"`
	Installments int    `json:"parcelas" binding:"min=0"`
	DueDate      string `json:"dataVencimento"`
}

// QuoteRequest is shared by both quote kinds; the contract block is ignored
// for equipment quotes.
type QuoteRequest struct {
	ClientID       string             `json:"clienteId" binding:"required"`
	TicketID       string             `json:"chamadoId"`
	Items          []QuoteItemRequest `json:"itens" binding:"dive"`
	Payment        PaymentRequest     `json:"pagamento"`
	ValidUntil     string             `json:"dataValidade"`
	Notes          string             `json:"observacoes"`
	MonthlyValue   decimal.Decimal    `json:"valorMensal"`
	BillingDay     int                `json:"diaVencimento" binding:"min=0,max=31"`
	BankID         string             `json:"bancoId"`
	Periodicity    string             `json:"periodicidade"`
	CoveredEquip   []string           `json:"equipamentosCobertos"`
	UncoveredEquip []string           `json:"equipamentosNaoCobertos"`
}

func (r QuoteRequest) ToInput() (usecase.QuoteInput, error) {
	due, err := parseDate(r.Payment.DueDate)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return usecase.QuoteInput{}, err
	}

	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			ProductID:   it.ProductID,
			Type:        entities.ItemType(it.Type),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return usecase.QuoteInput{
		ClientID: r.ClientID,
		TicketID: r.TicketID,
		Items:    items,
		Payment: entities.PaymentTerms{
			Method:       entities.PaymentMethod(r.Payment.Method),
			Installments: r.Payment.Installments,
			DueDate:      due,
		},
		ValidUntil:     validUntil,
		Notes:          r.Notes,
		MonthlyValue:   r.MonthlyValue,
		BillingDay:     r.BillingDay,
		BankID:         r.BankID,
		Periodicity:    r.Periodicity,
		CoveredEquip:   r.CoveredEquip,
		UncoveredEquip: r.UncoveredEquip,
	}, nil
}

type RejectQuoteRequest struct {
	Reason string `json:"motivo" binding:"required"`
	// ReturnTicket moves the linked ticket to pendente_retorno instead of
	// orcamento_reprovado.
	ReturnTicket bool `json:"retornarChamado"`
}

type QuoteEmailRequest struct {
	To           string `json:"to" binding:"omitempty,email"`
	Subject      string `json:"subject"`
	ApprovalLink string `json:"linkAprovacao" binding:"omitempty,url"`
}

func (r QuoteEmailRequest) ToInput() usecase.EmailInput {
	return usecase.EmailInput{To: r.To, Subject: r.Subject, ApprovalLink: r.ApprovalLink}
}
