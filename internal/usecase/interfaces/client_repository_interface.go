package interfaces

import (
	"context"
	"gestao_comercial/internal/domain/entities"
)

// IClientRepository abstracts persistence for clients (clientes) and their
// contatos / equipamentos sub-collections.
//
// Getters return a zero value when the document does not exist.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Client, error)
	List(ctx context.Context, companyID string) ([]entities.Client, error)
	Delete(ctx context.Context, companyID, id string) error

	ListContacts(ctx context.Context, companyID, clientID string) ([]entities.Contact, error)
	SaveContact(ctx context.Context, companyID string, c entities.Contact) (entities.Contact, error)
	DeleteContact(ctx context.Context, companyID, clientID, contactID string) error

	ListEquipments(ctx context.Context, companyID, clientID string) ([]entities.Equipment, error)
	SaveEquipment(ctx context.Context, companyID string, e entities.Equipment) (entities.Equipment, error)
}
