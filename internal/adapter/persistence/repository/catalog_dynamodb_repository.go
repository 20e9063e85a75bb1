package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type ticketItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Numero    string `dynamodbav:"numero"`
	ClienteID string `dynamodbav:"cliente_id"`
	Descricao string `dynamodbav:"descricao"`
	Status    string `dynamodbav:"status"`
	Historico string `dynamodbav:"historico"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type bankItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Nome      string `dynamodbav:"nome"`
	Codigo    string `dynamodbav:"codigo"`
	Agencia   string `dynamodbav:"agencia"`
	Conta     string `dynamodbav:"conta"`
	CreatedAt string `dynamodbav:"created_at"`
}

type productItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	Nome          string `dynamodbav:"nome"`
	Descricao     string `dynamodbav:"descricao,omitempty"`
	Fabricante    string `dynamodbav:"fabricante,omitempty"`
	ValorUnitario string `dynamodbav:"valor_unitario"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type TicketDynamoRepository struct{ t table }

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb DynamoAPI, tablePrefix string) *TicketDynamoRepository {
	return &TicketDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Tickets}}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	if err := r.t.create(ctx, toTicketItem(t)); err != nil {
		return entities.Ticket{}, conflict(err)
	}
	return t, nil
}

func (r *TicketDynamoRepository) Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	ok, err := r.t.replace(ctx, toTicketItem(t))
	if err != nil || !ok {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Ticket, error) {
	it, ok, err := getItem[ticketItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Ticket, error) {
	items, err := queryItems[ticketItem](ctx, r.t, companyID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Ticket, 0, len(items))
	for _, it := range items {
		out = append(out, fromTicketItem(it))
	}
	return out, nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		PK:        t.CompanyID,
		SK:        t.ID,
		Numero:    t.Number,
		ClienteID: t.ClientID,
		Descricao: t.Description,
		Status:    string(t.Status),
		Historico: toJSON(t.History),
		CreatedAt: timeToString(t.CreatedAt),
		UpdatedAt: timeToString(t.UpdatedAt),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	t := entities.Ticket{
		ID:          it.SK,
		CompanyID:   it.PK,
		Number:      it.Numero,
		ClientID:    it.ClienteID,
		Description: it.Descricao,
		Status:      entities.TicketStatus(it.Status),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Historico, &t.History)
	return t
}

type BankDynamoRepository struct{ t table }

var _ interfaces.IBankRepository = (*BankDynamoRepository)(nil)

func NewBankDynamoRepository(ddb DynamoAPI, tablePrefix string) *BankDynamoRepository {
	return &BankDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Banks}}
}

func (r *BankDynamoRepository) Create(ctx context.Context, b entities.Bank) (entities.Bank, error) {
	it := bankItem{
		PK:        b.CompanyID,
		SK:        b.ID,
		Nome:      b.Name,
		Codigo:    b.Code,
		Agencia:   b.Agency,
		Conta:     b.Account,
		CreatedAt: timeToString(b.CreatedAt),
	}
	if err := r.t.create(ctx, it); err != nil {
		return entities.Bank{}, conflict(err)
	}
	return b, nil
}

func (r *BankDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Bank, error) {
	it, ok, err := getItem[bankItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Bank{}, err
	}
	return fromBankItem(it), nil
}

func (r *BankDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Bank, error) {
	items, err := queryItems[bankItem](ctx, r.t, companyID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Bank, 0, len(items))
	for _, it := range items {
		out = append(out, fromBankItem(it))
	}
	return out, nil
}

func fromBankItem(it bankItem) entities.Bank {
	return entities.Bank{
		ID:        it.SK,
		CompanyID: it.PK,
		Name:      it.Nome,
		Code:      it.Codigo,
		Agency:    it.Agencia,
		Account:   it.Conta,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}

type ProductDynamoRepository struct{ t table }

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tablePrefix string) *ProductDynamoRepository {
	return &ProductDynamoRepository{t: table{ddb: ddb, name: tablePrefix + collections.Products}}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	it := productItem{
		PK:            p.CompanyID,
		SK:            p.ID,
		Nome:          p.Name,
		Descricao:     p.Description,
		Fabricante:    p.Manufacturer,
		ValorUnitario: decimalToString(p.UnitPrice),
		CreatedAt:     timeToString(p.CreatedAt),
	}
	if err := r.t.create(ctx, it); err != nil {
		return entities.Product{}, conflict(err)
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Product, error) {
	it, ok, err := getItem[productItem](ctx, r.t, companyID, id)
	if err != nil || !ok {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Product, error) {
	items, err := queryItems[productItem](ctx, r.t, companyID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:           it.SK,
		CompanyID:    it.PK,
		Name:         it.Nome,
		Description:  it.Descricao,
		Manufacturer: it.Fabricante,
		UnitPrice:    stringToDecimal(it.ValorUnitario),
		CreatedAt:    stringToTime(it.CreatedAt),
	}
}
