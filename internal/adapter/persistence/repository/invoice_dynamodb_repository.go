package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type invoiceItem struct {
	PK               string `dynamodbav:"pk"`
	SK               string `dynamodbav:"sk"`
	Numero           string `dynamodbav:"numero"`
	MesReferencia    string `dynamodbav:"mes_referencia"`
	Origem           string `dynamodbav:"origem"`
	ContratoID       string `dynamodbav:"contrato_id,omitempty"`
	VendaID          string `dynamodbav:"venda_id,omitempty"`
	ClienteID        string `dynamodbav:"cliente_id"`
	Cliente          string `dynamodbav:"cliente"`
	Descricao        string `dynamodbav:"descricao"`
	Valor            string `dynamodbav:"valor"`
	DataVencimento   string `dynamodbav:"data_vencimento"`
	Status           string `dynamodbav:"status"`
	CentroCustoID    string `dynamodbav:"centro_custo_id,omitempty"`
	BancoID          string `dynamodbav:"banco_id,omitempty"`
	RegistroBancario string `dynamodbav:"registro_bancario,omitempty"`
	DataPagamento    string `dynamodbav:"data_pagamento,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists boletos.
//
// ListByMonth filters on mes_referencia inside the company partition.
type InvoiceDynamoRepository struct {
	t table
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tablePrefix string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Invoices}}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error) {
	it, ok, err := getItem[invoiceItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Invoice, error) {
	return r.query(ctx, companyID, nil)
}

func (r *InvoiceDynamoRepository) ListByMonth(ctx context.Context, companyID, month string) ([]entities.Invoice, error) {
	return r.query(ctx, companyID, eqFilter("mes_referencia", month))
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	ok, err := r.t.replace(ctx, toInvoiceItem(inv))
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) query(ctx context.Context, companyID string, f *filter) ([]entities.Invoice, error) {
	items, err := queryItems[invoiceItem](ctx, r.t, companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		PK:             inv.CompanyID,
		SK:             inv.ID,
		Numero:         inv.Number,
		MesReferencia:  inv.ReferenceMonth,
		Origem:         string(inv.Origin),
		ContratoID:     inv.ContractID,
		VendaID:        inv.SaleID,
		ClienteID:      inv.Client.ID,
		Cliente:        toJSON(inv.Client),
		Descricao:      inv.Description,
		Valor:          decimalToString(inv.Amount),
		DataVencimento: timeToString(inv.DueDate),
		Status:         string(inv.Status),
		CentroCustoID:  inv.CostCenterID,
		BancoID:        inv.BankID,
		DataPagamento:  timePtrToString(inv.PaidAt),
		CreatedAt:      timeToString(inv.CreatedAt),
		UpdatedAt:      timeToString(inv.UpdatedAt),
	}
	if inv.Registration != nil {
		it.RegistroBancario = toJSON(inv.Registration)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:             it.SK,
		CompanyID:      it.PK,
		Number:         it.Numero,
		ReferenceMonth: it.MesReferencia,
		Origin:         entities.InvoiceOrigin(it.Origem),
		ContractID:     it.ContratoID,
		SaleID:         it.VendaID,
		Description:    it.Descricao,
		Amount:         stringToDecimal(it.Valor),
		DueDate:        stringToTime(it.DataVencimento),
		Status:         entities.InvoiceStatus(it.Status),
		CostCenterID:   it.CentroCustoID,
		BankID:         it.BancoID,
		PaidAt:         stringToTimePtr(it.DataPagamento),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Cliente, &inv.Client)
	if it.RegistroBancario != "" {
		inv.Registration = &entities.BankRegistration{}
		fromJSON(it.RegistroBancario, inv.Registration)
	}
	return inv
}
