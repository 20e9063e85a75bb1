package entities

import "time"

// TicketStatus for service tickets (chamados) that may originate quotes.
type TicketStatus string

const (
	TicketStatusAberto              TicketStatus = "aberto"
	TicketStatusAguardandoAprovacao TicketStatus = "aguardando_aprovacao"
	TicketStatusOrcamentoAprovado   TicketStatus = "orcamento_aprovado"
	TicketStatusOrcamentoReprovado  TicketStatus = "orcamento_reprovado"
	TicketStatusPendenteRetorno     TicketStatus = "pendente_retorno"
	TicketStatusConcluido           TicketStatus = "concluido"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusAberto: {
		TicketStatusAguardandoAprovacao, TicketStatusOrcamentoAprovado, TicketStatusOrcamentoReprovado,
		TicketStatusPendenteRetorno, TicketStatusConcluido,
	},
	TicketStatusAguardandoAprovacao: {TicketStatusOrcamentoAprovado, TicketStatusOrcamentoReprovado, TicketStatusPendenteRetorno},
	TicketStatusOrcamentoAprovado:   {TicketStatusConcluido},
	TicketStatusOrcamentoReprovado:  {TicketStatusAguardandoAprovacao, TicketStatusConcluido},
	TicketStatusPendenteRetorno:     {TicketStatusAguardandoAprovacao, TicketStatusOrcamentoAprovado, TicketStatusConcluido},
	TicketStatusConcluido:           {},
}

func (s TicketStatus) Valid() bool {
	_, ok := ticketTransitions[s]
	return ok
}

func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	return contains(ticketTransitions[s], next)
}

type Ticket struct {
	ID          string       `json:"id"`
	CompanyID   string       `json:"companyId"`
	Number      string       `json:"numero"`
	ClientID    string       `json:"clienteId"`
	Description string       `json:"descricao"`
	Status      TicketStatus `json:"status"`
	History     []AuditEntry `json:"historico"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
