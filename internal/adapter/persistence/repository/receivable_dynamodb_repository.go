package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type receivableItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	BoletoID        string `dynamodbav:"boleto_id,omitempty"`
	VendaID         string `dynamodbav:"venda_id,omitempty"`
	ContratoID      string `dynamodbav:"contrato_id,omitempty"`
	ClienteID       string `dynamodbav:"cliente_id"`
	ClienteNome     string `dynamodbav:"cliente_nome"`
	Descricao       string `dynamodbav:"descricao"`
	Valor           string `dynamodbav:"valor"`
	DataVencimento  string `dynamodbav:"data_vencimento,omitempty"`
	Status          string `dynamodbav:"status"`
	CentroCustoID   string `dynamodbav:"centro_custo_id,omitempty"`
	MesReferencia   string `dynamodbav:"mes_referencia,omitempty"`
	DataRecebimento string `dynamodbav:"data_recebimento,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type ReceivableDynamoRepository struct {
	t table
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb DynamoAPI, tablePrefix string) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Receivables}}
}

func (r *ReceivableDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Receivable, error) {
	it, ok, err := getItem[receivableItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *ReceivableDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Receivable, error) {
	return r.query(ctx, companyID, nil)
}

func (r *ReceivableDynamoRepository) ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Receivable, error) {
	return r.query(ctx, companyID, eqFilter("boleto_id", invoiceID))
}

func (r *ReceivableDynamoRepository) ListBySaleID(ctx context.Context, companyID, saleID string) ([]entities.Receivable, error) {
	return r.query(ctx, companyID, eqFilter("venda_id", saleID))
}

func (r *ReceivableDynamoRepository) Update(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	ok, err := r.t.replace(ctx, toReceivableItem(rec))
	if err != nil || !ok {
		return entities.Receivable{}, err
	}
	return rec, nil
}

func (r *ReceivableDynamoRepository) query(ctx context.Context, companyID string, f *filter) ([]entities.Receivable, error) {
	items, err := queryItems[receivableItem](ctx, r.t, companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Receivable, 0, len(items))
	for _, it := range items {
		out = append(out, fromReceivableItem(it))
	}
	return out, nil
}

func toReceivableItem(r entities.Receivable) receivableItem {
	return receivableItem{
		PK:              r.CompanyID,
		SK:              r.ID,
		BoletoID:        r.InvoiceID,
		VendaID:         r.SaleID,
		ContratoID:      r.ContractID,
		ClienteID:       r.ClientID,
		ClienteNome:     r.ClientName,
		Descricao:       r.Description,
		Valor:           decimalToString(r.Amount),
		DataVencimento:  timePtrToString(r.DueDate),
		Status:          string(r.Status),
		CentroCustoID:   r.CostCenterID,
		MesReferencia:   r.ReferenceMonth,
		DataRecebimento: timePtrToString(r.ReceivedAt),
		CreatedAt:       timeToString(r.CreatedAt),
		UpdatedAt:       timeToString(r.UpdatedAt),
	}
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	return entities.Receivable{
		ID:             it.SK,
		CompanyID:      it.PK,
		InvoiceID:      it.BoletoID,
		SaleID:         it.VendaID,
		ContractID:     it.ContratoID,
		ClientID:       it.ClienteID,
		ClientName:     it.ClienteNome,
		Description:    it.Descricao,
		Amount:         stringToDecimal(it.Valor),
		DueDate:        stringToTimePtr(it.DataVencimento),
		Status:         entities.ReceivableStatus(it.Status),
		CostCenterID:   it.CentroCustoID,
		ReferenceMonth: it.MesReferencia,
		ReceivedAt:     stringToTimePtr(it.DataRecebimento),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
