package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteKind selects the collection a quote lives in.
type QuoteKind string

const (
	QuoteKindEquipment QuoteKind = "equipamento"
	QuoteKindContract  QuoteKind = "contrato"
)

func (k QuoteKind) Valid() bool {
	return k == QuoteKindEquipment || k == QuoteKindContract
}

// Collection returns the document collection backing the kind.
func (k QuoteKind) Collection() string {
	if k == QuoteKindContract {
		return "orcamentosContratos"
	}
	return "orcamentosEquipamentos"
}

type QuoteStatus string

const (
	QuoteStatusEmElaboracao QuoteStatus = "em_elaboracao"
	QuoteStatusEnviado      QuoteStatus = "enviado"
	QuoteStatusAprovado     QuoteStatus = "aprovado"
	QuoteStatusReprovado    QuoteStatus = "reprovado"
	QuoteStatusExpirado     QuoteStatus = "expirado"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusEmElaboracao: {QuoteStatusEnviado, QuoteStatusAprovado, QuoteStatusReprovado},
	QuoteStatusEnviado:      {QuoteStatusAprovado, QuoteStatusReprovado, QuoteStatusExpirado, QuoteStatusEmElaboracao},
	QuoteStatusExpirado:     {QuoteStatusEmElaboracao},
	QuoteStatusReprovado:    {QuoteStatusEmElaboracao},
	QuoteStatusAprovado:     {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return contains(quoteTransitions[s], next)
}

// Editable reports whether items and terms may still change.
func (s QuoteStatus) Editable() bool {
	return s == QuoteStatusEmElaboracao || s == QuoteStatusEnviado
}

type ItemType string

const (
	ItemTypeProduto ItemType = "produto"
	ItemTypeServico ItemType = "servico"
)

type QuoteItem struct {
	ProductID   string          `json:"produtoId,omitempty"`
	Type        ItemType        `json:"tipo"`
	Description string          `json:"descricao"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"valorUnitario"`
}

func (i QuoteItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

type PaymentMethod string

const (
	PaymentAVista    PaymentMethod = "a_vista"
	PaymentParcelado PaymentMethod = "parcelado"
	PaymentBoleto    PaymentMethod = "boleto"
)

type PaymentTerms struct {
	Method       PaymentMethod `json:"forma"`
	Installments int           `json:"parcelas,omitempty"`
	DueDate      *time.Time    `json:"dataVencimento,omitempty"`
}

// AuditEntry is one line of historicoOperacoes.
type AuditEntry struct {
	Date     time.Time `json:"data"`
	UserID   string    `json:"usuarioId"`
	UserName string    `json:"usuarioNome"`
	Action   string    `json:"acao"`
	Detail   string    `json:"detalhe,omitempty"`
}

func NewAuditEntry(s Session, action, detail string, at time.Time) AuditEntry {
	return AuditEntry{Date: at, UserID: s.UserID, UserName: s.UserName, Action: action, Detail: detail}
}

// Quote (orçamento) for equipment or for a recurring contract.
//
// Contract-only fields are zero on equipment quotes.
type Quote struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"companyId"`
	Kind           QuoteKind       `json:"tipo"`
	Number         string          `json:"numero"`
	Client         ClientSnapshot  `json:"cliente"`
	Items          []QuoteItem     `json:"itens"`
	Payment        PaymentTerms    `json:"pagamento"`
	Total          decimal.Decimal `json:"valorTotal"`
	Status         QuoteStatus     `json:"status"`
	ValidUntil     *time.Time      `json:"dataValidade,omitempty"`
	SaleGenerated  bool            `json:"vendaGerada"`
	SaleID         string          `json:"vendaId,omitempty"`
	ContractID     string          `json:"contratoId,omitempty"`
	TicketID       string          `json:"chamadoId,omitempty"`
	RejectReason   string          `json:"motivoReprovacao,omitempty"`
	History        []AuditEntry    `json:"historicoOperacoes"`
	Notes          string          `json:"observacoes,omitempty"`
	MonthlyValue   decimal.Decimal `json:"valorMensal"`
	BillingDay     int             `json:"diaVencimento,omitempty"`
	BankID         string          `json:"bancoId,omitempty"`
	Periodicity    string          `json:"periodicidade,omitempty"`
	CoveredEquip   []string        `json:"equipamentosCobertos,omitempty"`
	UncoveredEquip []string        `json:"equipamentosNaoCobertos,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ComputeTotal sums the line items.
func (q Quote) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.Total())
	}
	return total
}

// IsExpired reports whether a sent quote is past its validity.
func (q Quote) IsExpired(now time.Time) bool {
	return q.Status == QuoteStatusEnviado && q.ValidUntil != nil && q.ValidUntil.Before(now)
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
