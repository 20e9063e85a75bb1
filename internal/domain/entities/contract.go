package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is the proposal stage of a contract.
type ContractStatus string

const (
	ContractStatusEmElaboracao     ContractStatus = "em_elaboracao"
	ContractStatusEnviadoAoCliente ContractStatus = "enviado_ao_cliente"
	ContractStatusAprovado         ContractStatus = "aprovado"
	ContractStatusReprovado        ContractStatus = "reprovado"
	ContractStatusExpirado         ContractStatus = "expirado"
	ContractStatusCancelado        ContractStatus = "cancelado"
)

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusEmElaboracao:     {ContractStatusEnviadoAoCliente, ContractStatusAprovado, ContractStatusReprovado, ContractStatusCancelado},
	ContractStatusEnviadoAoCliente: {ContractStatusEmElaboracao, ContractStatusAprovado, ContractStatusReprovado, ContractStatusExpirado, ContractStatusCancelado},
	ContractStatusAprovado:         {ContractStatusCancelado, ContractStatusExpirado},
	ContractStatusReprovado:        {ContractStatusEmElaboracao},
	ContractStatusExpirado:         {ContractStatusEmElaboracao},
	ContractStatusCancelado:        {},
}

func (s ContractStatus) Valid() bool {
	_, ok := contractTransitions[s]
	return ok
}

func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	return contains(contractTransitions[s], next)
}

// ContractSituation is the post-activation lifecycle. It only applies to
// approved contracts; before approval it is empty.
type ContractSituation string

const (
	ContractSituationNone      ContractSituation = ""
	ContractSituationAtivo     ContractSituation = "ativo"
	ContractSituationSuspenso  ContractSituation = "suspenso"
	ContractSituationCancelado ContractSituation = "cancelado"
	ContractSituationEncerrado ContractSituation = "encerrado"
)

var situationTransitions = map[ContractSituation][]ContractSituation{
	ContractSituationNone:      {ContractSituationAtivo},
	ContractSituationAtivo:     {ContractSituationSuspenso, ContractSituationCancelado, ContractSituationEncerrado},
	ContractSituationSuspenso:  {ContractSituationAtivo, ContractSituationCancelado, ContractSituationEncerrado},
	ContractSituationCancelado: {},
	ContractSituationEncerrado: {},
}

func (s ContractSituation) Valid() bool {
	_, ok := situationTransitions[s]
	return ok
}

func (s ContractSituation) CanTransitionTo(next ContractSituation) bool {
	return contains(situationTransitions[s], next)
}

type Contract struct {
	ID             string            `json:"id"`
	CompanyID      string            `json:"companyId"`
	Number         string            `json:"numero"`
	QuoteID        string            `json:"orcamentoId,omitempty"`
	Client         ClientSnapshot    `json:"cliente"`
	CoveredEquip   []string          `json:"equipamentosCobertos"`
	UncoveredEquip []string          `json:"equipamentosNaoCobertos"`
	MonthlyValue   decimal.Decimal   `json:"valorMensal"`
	BillingDay     int               `json:"diaVencimento"`
	BankID         string            `json:"bancoId,omitempty"`
	BankName       string            `json:"bancoNome,omitempty"`
	Periodicity    string            `json:"periodicidade,omitempty"`
	StartDate      *time.Time        `json:"dataInicio,omitempty"`
	Status         ContractStatus    `json:"status"`
	Situation      ContractSituation `json:"situacao"`
	Notes          string            `json:"observacoes,omitempty"`
	History        []AuditEntry      `json:"historicoOperacoes"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// InForce reports whether the contract keeps the client active: approved and
// neither cancelled nor closed after activation.
func (c Contract) InForce() bool {
	return c.Status == ContractStatusAprovado &&
		c.Situation != ContractSituationCancelado &&
		c.Situation != ContractSituationEncerrado
}

// Terminal reports whether the contract can no longer keep a client active.
func (c Contract) Terminal() bool {
	switch c.Status {
	case ContractStatusCancelado, ContractStatusReprovado, ContractStatusExpirado:
		return true
	}
	return c.Situation == ContractSituationCancelado || c.Situation == ContractSituationEncerrado
}

// DeriveClientContractStatus recomputes the client status from all of its
// contracts. edited must already be part of contracts with its new state.
func DeriveClientContractStatus(contracts []Contract, edited Contract, current ClientContractStatus) ClientContractStatus {
	for _, c := range contracts {
		if c.InForce() {
			return ClientContractAtivo
		}
	}
	if edited.Terminal() {
		return ClientContractCancelado
	}
	return current
}
