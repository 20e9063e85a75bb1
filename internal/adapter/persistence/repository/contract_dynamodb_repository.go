package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type contractItem struct {
	PK                      string `dynamodbav:"pk"`
	SK                      string `dynamodbav:"sk"`
	Numero                  string `dynamodbav:"numero"`
	OrcamentoID             string `dynamodbav:"orcamento_id,omitempty"`
	ClienteID               string `dynamodbav:"cliente_id"`
	Cliente                 string `dynamodbav:"cliente"`
	EquipamentosCobertos    string `dynamodbav:"equipamentos_cobertos"`
	EquipamentosNaoCobertos string `dynamodbav:"equipamentos_nao_cobertos"`
	ValorMensal             string `dynamodbav:"valor_mensal"`
	DiaVencimento           int    `dynamodbav:"dia_vencimento"`
	BancoID                 string `dynamodbav:"banco_id,omitempty"`
	BancoNome               string `dynamodbav:"banco_nome,omitempty"`
	Periodicidade           string `dynamodbav:"periodicidade,omitempty"`
	DataInicio              string `dynamodbav:"data_inicio,omitempty"`
	Status                  string `dynamodbav:"status"`
	Situacao                string `dynamodbav:"situacao"`
	Observacoes             string `dynamodbav:"observacoes,omitempty"`
	HistoricoOperacoes      string `dynamodbav:"historico_operacoes"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

type ContractDynamoRepository struct {
	t table
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI, tablePrefix string) *ContractDynamoRepository {
	return &ContractDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Contracts}}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := r.t.create(ctx, toContractItem(c)); err != nil {
		return entities.Contract{}, conflict(err)
	}
	return c, nil
}

func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	ok, err := r.t.replace(ctx, toContractItem(c))
	if err != nil || !ok {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Contract, error) {
	it, ok, err := getItem[contractItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Contract, error) {
	return r.query(ctx, companyID, nil)
}

func (r *ContractDynamoRepository) ListByClientID(ctx context.Context, companyID, clientID string) ([]entities.Contract, error) {
	return r.query(ctx, companyID, eqFilter("cliente_id", clientID))
}

func (r *ContractDynamoRepository) Numbers(ctx context.Context, companyID, prefix string) ([]string, error) {
	contracts, err := r.query(ctx, companyID, prefixFilter("numero", prefix))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, c.Number)
	}
	return out, nil
}

func (r *ContractDynamoRepository) query(ctx context.Context, companyID string, f *filter) ([]entities.Contract, error) {
	items, err := queryItems[contractItem](ctx, r.t, companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contract, 0, len(items))
	for _, it := range items {
		out = append(out, fromContractItem(it))
	}
	return out, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		PK:                      c.CompanyID,
		SK:                      c.ID,
		Numero:                  c.Number,
		OrcamentoID:             c.QuoteID,
		ClienteID:               c.Client.ID,
		Cliente:                 toJSON(c.Client),
		EquipamentosCobertos:    toJSON(c.CoveredEquip),
		EquipamentosNaoCobertos: toJSON(c.UncoveredEquip),
		ValorMensal:             decimalToString(c.MonthlyValue),
		DiaVencimento:           c.BillingDay,
		BancoID:                 c.BankID,
		BancoNome:               c.BankName,
		Periodicidade:           c.Periodicity,
		DataInicio:              timePtrToString(c.StartDate),
		Status:                  string(c.Status),
		Situacao:                string(c.Situation),
		Observacoes:             c.Notes,
		HistoricoOperacoes:      toJSON(c.History),
		CreatedAt:               timeToString(c.CreatedAt),
		UpdatedAt:               timeToString(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		ID:           it.SK,
		CompanyID:    it.PK,
		Number:       it.Numero,
		QuoteID:      it.OrcamentoID,
		MonthlyValue: stringToDecimal(it.ValorMensal),
		BillingDay:   it.DiaVencimento,
		BankID:       it.BancoID,
		BankName:     it.BancoNome,
		Periodicity:  it.Periodicidade,
		StartDate:    stringToTimePtr(it.DataInicio),
		Status:       entities.ContractStatus(it.Status),
		Situation:    entities.ContractSituation(it.Situacao),
		Notes:        it.Observacoes,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Cliente, &c.Client)
	fromJSON(it.EquipamentosCobertos, &c.CoveredEquip)
	fromJSON(it.EquipamentosNaoCobertos, &c.UncoveredEquip)
	fromJSON(it.HistoricoOperacoes, &c.History)
	return c
}
