package memory

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
)

type ClientRepository struct{ s *Store }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(s *Store) *ClientRepository { return &ClientRepository{s: s} }

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	if _, err := put(r.s, opCreate, collections.Clients, c.CompanyID, c.ID, c); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientRepository) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	ok, err := put(r.s, opUpdate, collections.Clients, c.CompanyID, c.ID, c)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientRepository) GetByID(_ context.Context, companyID, id string) (entities.Client, error) {
	return get[entities.Client](r.s, collections.Clients, companyID, id)
}

func (r *ClientRepository) List(_ context.Context, companyID string) ([]entities.Client, error) {
	return list[entities.Client](r.s, collections.Clients, companyID, nil)
}

func (r *ClientRepository) Delete(_ context.Context, companyID, id string) error {
	err := r.s.write(op{kind: opDelete, collection: collections.Clients, partition: companyID, id: id})
	if isNotFound(err) {
		return nil
	}
	return err
}

func (r *ClientRepository) ListContacts(_ context.Context, companyID, clientID string) ([]entities.Contact, error) {
	return list[entities.Contact](r.s, collections.Contacts, collections.ClientScope(companyID, clientID), nil)
}

func (r *ClientRepository) SaveContact(_ context.Context, companyID string, c entities.Contact) (entities.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	scope := collections.ClientScope(companyID, c.ClientID)
	kind := opCreate
	if _, ok := r.s.docs[collections.Contacts][scope][c.ID]; ok {
		kind = opUpdate
	}
	if err := r.s.apply([]op{{kind: kind, collection: collections.Contacts, partition: scope, id: c.ID, value: c}}); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ClientRepository) DeleteContact(_ context.Context, companyID, clientID, contactID string) error {
	err := r.s.write(op{kind: opDelete, collection: collections.Contacts, partition: collections.ClientScope(companyID, clientID), id: contactID})
	if isNotFound(err) {
		return nil
	}
	return err
}

func (r *ClientRepository) ListEquipments(_ context.Context, companyID, clientID string) ([]entities.Equipment, error) {
	return list[entities.Equipment](r.s, collections.Equipments, collections.ClientScope(companyID, clientID), nil)
}

func (r *ClientRepository) SaveEquipment(_ context.Context, companyID string, e entities.Equipment) (entities.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	scope := collections.ClientScope(companyID, e.ClientID)
	kind := opCreate
	if _, ok := r.s.docs[collections.Equipments][scope][e.ID]; ok {
		kind = opUpdate
	}
	if err := r.s.apply([]op{{kind: kind, collection: collections.Equipments, partition: scope, id: e.ID, value: e}}); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}
