package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type saleItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	OrcamentoID     string `dynamodbav:"orcamento_id"`
	OrcamentoNumero string `dynamodbav:"orcamento_numero"`
	OrcamentoTipo   string `dynamodbav:"orcamento_tipo"`
	ClienteID       string `dynamodbav:"cliente_id"`
	Cliente         string `dynamodbav:"cliente"`
	Itens           string `dynamodbav:"itens"`
	Pagamento       string `dynamodbav:"pagamento"`
	ValorTotal      string `dynamodbav:"valor_total"`
	Status          string `dynamodbav:"status"`
	BoletoID        string `dynamodbav:"boleto_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type SaleDynamoRepository struct {
	t table
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoAPI, tablePrefix string) *SaleDynamoRepository {
	return &SaleDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Sales}}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Sale, error) {
	it, ok, err := getItem[saleItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) GetByQuoteID(ctx context.Context, companyID, quoteID string) (entities.Sale, error) {
	sales, err := r.query(ctx, companyID, eqFilter("orcamento_id", quoteID))
	if err != nil || len(sales) == 0 {
		return entities.Sale{}, err
	}
	return sales[0], nil
}

func (r *SaleDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Sale, error) {
	return r.query(ctx, companyID, nil)
}

func (r *SaleDynamoRepository) query(ctx context.Context, companyID string, f *filter) ([]entities.Sale, error) {
	items, err := queryItems[saleItem](ctx, r.t, companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Sale, 0, len(items))
	for _, it := range items {
		out = append(out, fromSaleItem(it))
	}
	return out, nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		PK:              s.CompanyID,
		SK:              s.ID,
		OrcamentoID:     s.QuoteID,
		OrcamentoNumero: s.QuoteNumber,
		OrcamentoTipo:   string(s.QuoteKind),
		ClienteID:       s.Client.ID,
		Cliente:         toJSON(s.Client),
		Itens:           toJSON(s.Items),
		Pagamento:       toJSON(s.Payment),
		ValorTotal:      decimalToString(s.Total),
		Status:          string(s.Status),
		BoletoID:        s.InvoiceID,
		CreatedAt:       timeToString(s.CreatedAt),
		UpdatedAt:       timeToString(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	s := entities.Sale{
		ID:          it.SK,
		CompanyID:   it.PK,
		QuoteID:     it.OrcamentoID,
		QuoteNumber: it.OrcamentoNumero,
		QuoteKind:   entities.QuoteKind(it.OrcamentoTipo),
		Total:       stringToDecimal(it.ValorTotal),
		Status:      entities.SaleStatus(it.Status),
		InvoiceID:   it.BoletoID,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Cliente, &s.Client)
	fromJSON(it.Itens, &s.Items)
	fromJSON(it.Pagamento, &s.Payment)
	return s
}
