package request

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"

	"github.com/shopspring/decimal"
)

type ContractRequest struct {
	ClientID       string          `json:"clienteId" binding:"required"`
	CoveredEquip   []string        `json:"equipamentosCobertos"`
	UncoveredEquip []string        `json:"equipamentosNaoCobertos"`
	MonthlyValue   decimal.Decimal `json:"valorMensal"`
	BillingDay     int             `json:"diaVencimento" binding:"required,min=1,max=31"`
	BankID         string          `json:"bancoId"`
	Periodicity    string          `json:"periodicidade"`
	StartDate      string          `json:"dataInicio"`
	Notes          string          `json:"observacoes"`
}

func (r ContractRequest) ToInput() (usecase.ContractInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.ContractInput{}, err
	}
	return usecase.ContractInput{
		ClientID:       r.ClientID,
		CoveredEquip:   r.CoveredEquip,
		UncoveredEquip: r.UncoveredEquip,
		MonthlyValue:   r.MonthlyValue,
		BillingDay:     r.BillingDay,
		BankID:         r.BankID,
		Periodicity:    r.Periodicity,
		StartDate:      start,
		Notes:          r.Notes,
	}, nil
}

// ContractAdminRequest edits the administrative fields of an existing contract.
type ContractAdminRequest struct {
	MonthlyValue decimal.Decimal `json:"valorMensal"`
	BillingDay   int             `json:"diaVencimento" binding:"required,min=1,max=31"`
	BankID       string          `json:"bancoId"`
	Periodicity  string          `json:"periodicidade"`
	Notes        string          `json:"observacoes"`
}

func (r ContractAdminRequest) ToInput() usecase.ContractAdminInput {
	return usecase.ContractAdminInput{
		MonthlyValue: r.MonthlyValue,
		BillingDay:   r.BillingDay,
		BankID:       r.BankID,
		Periodicity:  r.Periodicity,
		Notes:        r.Notes,
	}
}

type ContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ContractStatusRequest) ToStatus() entities.ContractStatus {
	return entities.ContractStatus(r.Status)
}

type ContractSituationRequest struct {
	Situation string `json:"situacao" binding:"required"`
}

func (r ContractSituationRequest) ToSituation() entities.ContractSituation {
	return entities.ContractSituation(r.Situation)
}
