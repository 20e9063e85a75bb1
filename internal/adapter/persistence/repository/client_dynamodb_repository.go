package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type clientItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	Nome            string `dynamodbav:"nome"`
	Prefixo         string `dynamodbav:"prefixo,omitempty"`
	Documento       string `dynamodbav:"documento,omitempty"`
	Endereco        string `dynamodbav:"endereco"`
	Contato         string `dynamodbav:"contato"`
	StatusContrato  string `dynamodbav:"status_contrato"`
	TemContrato     bool   `dynamodbav:"tem_contrato"`
	CentroCustoID   string `dynamodbav:"centro_custo_id,omitempty"`
	CentroCustoNome string `dynamodbav:"centro_custo_nome,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type contactItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	ClienteID string `dynamodbav:"cliente_id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email,omitempty"`
	Telefone  string `dynamodbav:"telefone,omitempty"`
	Cargo     string `dynamodbav:"cargo,omitempty"`
	Principal bool   `dynamodbav:"principal"`
	CreatedAt string `dynamodbav:"created_at"`
}

type equipmentItem struct {
	PK          string `dynamodbav:"pk"`
	SK          string `dynamodbav:"sk"`
	ClienteID   string `dynamodbav:"cliente_id"`
	Descricao   string `dynamodbav:"descricao"`
	Fabricante  string `dynamodbav:"fabricante,omitempty"`
	Modelo      string `dynamodbav:"modelo,omitempty"`
	NumeroSerie string `dynamodbav:"numero_serie,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists clients and their contatos/equipamentos
// sub-collections. Sub-collection tables are partitioned by company#client.
type ClientDynamoRepository struct {
	clients    table
	contacts   table
	equipments table
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tablePrefix string) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		clients:    table{ddb: ddb, name: tablePrefix + collections.Clients},
		contacts:   table{ddb: ddb, name: tablePrefix + collections.Contacts},
		equipments: table{ddb: ddb, name: tablePrefix + collections.Equipments},
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.clients.create(ctx, toClientItem(c)); err != nil {
		return entities.Client{}, conflict(err)
	}
	return c, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := r.clients.replace(ctx, toClientItem(c))
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Client, error) {
	it, ok, err := getItem[clientItem](ctx, r.clients, companyID, id)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context, companyID string) ([]entities.Client, error) {
	items, err := queryItems[clientItem](ctx, r.clients, companyID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, companyID, id string) error {
	return r.clients.delete(ctx, companyID, id)
}

func (r *ClientDynamoRepository) ListContacts(ctx context.Context, companyID, clientID string) ([]entities.Contact, error) {
	items, err := queryItems[contactItem](ctx, r.contacts, collections.ClientScope(companyID, clientID), nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contact, 0, len(items))
	for _, it := range items {
		out = append(out, fromContactItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) SaveContact(ctx context.Context, companyID string, c entities.Contact) (entities.Contact, error) {
	if err := r.contacts.upsert(ctx, toContactItem(companyID, c)); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) DeleteContact(ctx context.Context, companyID, clientID, contactID string) error {
	return r.contacts.delete(ctx, collections.ClientScope(companyID, clientID), contactID)
}

func (r *ClientDynamoRepository) ListEquipments(ctx context.Context, companyID, clientID string) ([]entities.Equipment, error) {
	items, err := queryItems[equipmentItem](ctx, r.equipments, collections.ClientScope(companyID, clientID), nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Equipment, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Equipment{
			ID:           it.SK,
			ClientID:     it.ClienteID,
			Description:  it.Descricao,
			Manufacturer: it.Fabricante,
			Model:        it.Modelo,
			SerialNumber: it.NumeroSerie,
			CreatedAt:    stringToTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *ClientDynamoRepository) SaveEquipment(ctx context.Context, companyID string, e entities.Equipment) (entities.Equipment, error) {
	it := equipmentItem{
		PK:          collections.ClientScope(companyID, e.ClientID),
		SK:          e.ID,
		ClienteID:   e.ClientID,
		Descricao:   e.Description,
		Fabricante:  e.Manufacturer,
		Modelo:      e.Model,
		NumeroSerie: e.SerialNumber,
		CreatedAt:   timeToString(e.CreatedAt),
	}
	if err := r.equipments.upsert(ctx, it); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		PK:              c.CompanyID,
		SK:              c.ID,
		Nome:            c.Name,
		Prefixo:         c.Prefix,
		Documento:       c.Document,
		Endereco:        toJSON(c.Address),
		Contato:         toJSON(c.Contact),
		StatusContrato:  string(c.ContractStatus),
		TemContrato:     c.HasContract,
		CentroCustoID:   c.CostCenterID,
		CentroCustoNome: c.CostCenterName,
		CreatedAt:       timeToString(c.CreatedAt),
		UpdatedAt:       timeToString(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	c := entities.Client{
		ID:             it.SK,
		CompanyID:      it.PK,
		Name:           it.Nome,
		Prefix:         it.Prefixo,
		Document:       it.Documento,
		ContractStatus: entities.ClientContractStatus(it.StatusContrato),
		HasContract:    it.TemContrato,
		CostCenterID:   it.CentroCustoID,
		CostCenterName: it.CentroCustoNome,
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
	fromJSON(it.Endereco, &c.Address)
	fromJSON(it.Contato, &c.Contact)
	return c
}

func toContactItem(companyID string, c entities.Contact) contactItem {
	return contactItem{
		PK:        collections.ClientScope(companyID, c.ClientID),
		SK:        c.ID,
		ClienteID: c.ClientID,
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		Cargo:     c.Role,
		Principal: c.Primary,
		CreatedAt: timeToString(c.CreatedAt),
	}
}

func fromContactItem(it contactItem) entities.Contact {
	return entities.Contact{
		ID:        it.SK,
		ClientID:  it.ClienteID,
		Name:      it.Nome,
		Email:     it.Email,
		Phone:     it.Telefone,
		Role:      it.Cargo,
		Primary:   it.Principal,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
