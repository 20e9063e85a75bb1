package repository

import (
	"context"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type quoteItem struct {
	PK                      string `dynamodbav:"pk"`
	SK                      string `dynamodbav:"sk"`
	Tipo                    string `dynamodbav:"tipo"`
	Numero                  string `dynamodbav:"numero"`
	ClienteID               string `dynamodbav:"cliente_id"`
	Cliente                 string `dynamodbav:"cliente"`
	Itens                   string `dynamodbav:"itens"`
	Pagamento               string `dynamodbav:"pagamento"`
	ValorTotal              string `dynamodbav:"valor_total"`
	Status                  string `dynamodbav:"status"`
	DataValidade            string `dynamodbav:"data_validade,omitempty"`
	VendaGerada             bool   `dynamodbav:"venda_gerada"`
	VendaID                 string `dynamodbav:"venda_id,omitempty"`
	ContratoID              string `dynamodbav:"contrato_id,omitempty"`
	ChamadoID               string `dynamodbav:"chamado_id,omitempty"`
	MotivoReprovacao        string `dynamodbav:"motivo_reprovacao,omitempty"`
	HistoricoOperacoes      string `dynamodbav:"historico_operacoes"`
	Observacoes             string `dynamodbav:"observacoes,omitempty"`
	ValorMensal             string `dynamodbav:"valor_mensal,omitempty"`
	DiaVencimento           int    `dynamodbav:"dia_vencimento,omitempty"`
	BancoID                 string `dynamodbav:"banco_id,omitempty"`
	Periodicidade           string `dynamodbav:"periodicidade,omitempty"`
	EquipamentosCobertos    string `dynamodbav:"equipamentos_cobertos,omitempty"`
	EquipamentosNaoCobertos string `dynamodbav:"equipamentos_nao_cobertos,omitempty"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository keeps one table per quote kind
// (orcamentosEquipamentos and orcamentosContratos).
type QuoteDynamoRepository struct {
	tables map[entities.QuoteKind]table
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tablePrefix string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{tables: map[entities.QuoteKind]table{
		entities.QuoteKindEquipment: {ddb: ddb, name: tablePrefix + entities.QuoteKindEquipment.Collection()},
		entities.QuoteKindContract:  {ddb: ddb, name: tablePrefix + entities.QuoteKindContract.Collection()},
	}}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.tables[q.Kind].create(ctx, toQuoteItem(q)); err != nil {
		return entities.Quote{}, conflict(err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	ok, err := r.tables[q.Kind].replace(ctx, toQuoteItem(q))
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, companyID string, kind entities.QuoteKind, id string) (entities.Quote, error) {
	it, ok, err := getItem[quoteItem](ctx, r.tables[kind], companyID, id)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, companyID string, kind entities.QuoteKind) ([]entities.Quote, error) {
	return r.query(ctx, companyID, kind, nil)
}

func (r *QuoteDynamoRepository) Numbers(ctx context.Context, companyID string, kind entities.QuoteKind, prefix string) ([]string, error) {
	quotes, err := r.query(ctx, companyID, kind, prefixFilter("numero", prefix))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Number)
	}
	return out, nil
}

func (r *QuoteDynamoRepository) query(ctx context.Context, companyID string, kind entities.QuoteKind, f *filter) ([]entities.Quote, error) {
	items, err := queryItems[quoteItem](ctx, r.tables[kind], companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		PK:                 q.CompanyID,
		SK:                 q.ID,
		Tipo:               string(q.Kind),
		Numero:             q.Number,
		ClienteID:          q.Client.ID,
		Cliente:            toJSON(q.Client),
		Itens:              toJSON(q.Items),
		Pagamento:          toJSON(q.Payment),
		ValorTotal:         decimalToString(q.Total),
		Status:             string(q.Status),
		DataValidade:       timePtrToString(q.ValidUntil),
		VendaGerada:        q.SaleGenerated,
		VendaID:            q.SaleID,
		ContratoID:         q.ContractID,
		ChamadoID:          q.TicketID,
		MotivoReprovacao:   q.RejectReason,
		HistoricoOperacoes: toJSON(q.History),
		Observacoes:        q.Notes,
		DiaVencimento:      q.BillingDay,
		BancoID:            q.BankID,
		Periodicidade:      q.Periodicity,
		CreatedAt:          timeToString(q.CreatedAt),
		UpdatedAt:          timeToString(q.UpdatedAt),
	}
	if q.Kind == entities.QuoteKindContract {
		it.ValorMensal = decimalToString(q.MonthlyValue)
		it.EquipamentosCobertos = toJSON(q.CoveredEquip)
		it.EquipamentosNaoCobertos = toJSON(q.UncoveredEquip)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:            it.SK,
		CompanyID:     it.PK,
		Kind:          entities.QuoteKind(it.Tipo),
		Number:        it.Numero,
		Total:         stringToDecimal(it.ValorTotal),
		Status:        entities.QuoteStatus(it.Status),
		ValidUntil:    stringToTimePtr(it.DataValidade),
		SaleGenerated: it.VendaGerada,
		SaleID:        it.VendaID,
		ContractID:    it.ContratoID,
		TicketID:      it.ChamadoID,
		RejectReason:  it.MotivoReprovacao,
		Notes:         it.Observacoes,
		MonthlyValue:  stringToDecimal(it.ValorMensal),
		BillingDay:    it.DiaVencimento,
		BankID:        it.BancoID,
		Periodicity:   it.Periodicidade,
		CreatedAt:     stringToTime(it.CreatedAt),
		UpdatedAt:     stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Cliente, &q.Client)
	fromJSON(it.Itens, &q.Items)
	fromJSON(it.Pagamento, &q.Payment)
	fromJSON(it.HistoricoOperacoes, &q.History)
	fromJSON(it.EquipamentosCobertos, &q.CoveredEquip)
	fromJSON(it.EquipamentosNaoCobertos, &q.UncoveredEquip)
	return q
}
