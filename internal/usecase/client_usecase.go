package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidContactName = errors.New("invalid contact name")
	ErrInvalidEquipment   = errors.New("invalid equipment description")
)

type ClientInput struct {
	Name     string
	Prefix   string
	Document string
	Address  entities.Address
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Role    string
	Primary bool
}

type EquipmentInput struct {
	Description  string
	Manufacturer string
	Model        string
	SerialNumber string
}

type IClientUseCase interface {
	Create(ctx context.Context, s entities.Session, in ClientInput) (entities.Client, error)
	Update(ctx context.Context, s entities.Session, id string, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, s entities.Session, id string) (entities.Client, error)
	List(ctx context.Context, s entities.Session) ([]entities.Client, error)
	Delete(ctx context.Context, s entities.Session, id string) error
	AddContact(ctx context.Context, s entities.Session, clientID string, in ContactInput) (entities.Contact, error)
	ListContacts(ctx context.Context, s entities.Session, clientID string) ([]entities.Contact, error)
	SetPrimaryContact(ctx context.Context, s entities.Session, clientID, contactID string) (entities.Client, error)
	AddEquipment(ctx context.Context, s entities.Session, clientID string, in EquipmentInput) (entities.Equipment, error)
	ListEquipments(ctx context.Context, s entities.Session, clientID string) ([]entities.Equipment, error)
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	costCenters ICostCenterUseCase
	phones      interfaces.IPhoneNormalizer
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, costCenters ICostCenterUseCase, phones interfaces.IPhoneNormalizer) *ClientUseCase {
	return &ClientUseCase{repo: repo, costCenters: costCenters, phones: phones}
}

func (u *ClientUseCase) Create(ctx context.Context, s entities.Session, in ClientInput) (entities.Client, error) {
	if err := checkSession(s); err != nil {
		return entities.Client{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		CompanyID: s.CompanyID,
		Name:      name,
		Prefix:    strings.TrimSpace(in.Prefix),
		Document:  strings.TrimSpace(in.Document),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	return u.afterSave(ctx, s, created), nil
}

func (u *ClientUseCase) Update(ctx context.Context, s entities.Session, id string, in ClientInput) (entities.Client, error) {
	c, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Client{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	c.Name = name
	c.Prefix = strings.TrimSpace(in.Prefix)
	c.Document = strings.TrimSpace(in.Document)
	c.Address = in.Address
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return u.afterSave(ctx, s, updated), nil
}

// afterSave ensures the cost center without failing the save.
func (u *ClientUseCase) afterSave(ctx context.Context, s entities.Session, c entities.Client) entities.Client {
	if u.costCenters == nil {
		return c
	}
	cc, err := u.costCenters.EnsureForClient(ctx, s, c)
	if err != nil {
		log.Warn().Err(err).Str("component", "client").Str("client_id", c.ID).Msg("cost center ensure failed after client save")
		return c
	}
	c.CostCenterID = cc.ID
	c.CostCenterName = cc.Name
	return c
}

func (u *ClientUseCase) GetByID(ctx context.Context, s entities.Session, id string) (entities.Client, error) {
	if err := checkSession(s); err != nil {
		return entities.Client{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, s entities.Session) ([]entities.Client, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, s.CompanyID)
}

func (u *ClientUseCase) Delete(ctx context.Context, s entities.Session, id string) error {
	c, err := u.GetByID(ctx, s, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, s.CompanyID, c.ID)
}

func (u *ClientUseCase) AddContact(ctx context.Context, s entities.Session, clientID string, in ContactInput) (entities.Contact, error) {
	client, err := u.GetByID(ctx, s, clientID)
	if err != nil {
		return entities.Contact{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Contact{}, ErrInvalidContactName
	}

	existing, err := u.repo.ListContacts(ctx, s.CompanyID, client.ID)
	if err != nil {
		return entities.Contact{}, err
	}

	c := entities.Contact{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     u.normalizePhone(in.Phone),
		Role:      strings.TrimSpace(in.Role),
		Primary:   in.Primary || len(existing) == 0,
		CreatedAt: time.Now().UTC(),
	}
	saved, err := u.repo.SaveContact(ctx, s.CompanyID, c)
	if err != nil {
		return entities.Contact{}, err
	}
	if saved.Primary {
		u.demoteOthers(ctx, s, existing, saved.ID)
		u.mirrorContact(ctx, client, saved)
	}
	return saved, nil
}

func (u *ClientUseCase) ListContacts(ctx context.Context, s entities.Session, clientID string) ([]entities.Contact, error) {
	client, err := u.GetByID(ctx, s, clientID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListContacts(ctx, s.CompanyID, client.ID)
}

func (u *ClientUseCase) SetPrimaryContact(ctx context.Context, s entities.Session, clientID, contactID string) (entities.Client, error) {
	client, err := u.GetByID(ctx, s, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	contacts, err := u.repo.ListContacts(ctx, s.CompanyID, client.ID)
	if err != nil {
		return entities.Client{}, err
	}

	contactID = strings.TrimSpace(contactID)
	var chosen entities.Contact
	for _, c := range contacts {
		if c.ID == contactID {
			chosen = c
		}
	}
	if chosen.ID == "" {
		return entities.Client{}, ErrContactNotFound
	}

	if !chosen.Primary {
		chosen.Primary = true
		if chosen, err = u.repo.SaveContact(ctx, s.CompanyID, chosen); err != nil {
			return entities.Client{}, err
		}
	}
	u.demoteOthers(ctx, s, contacts, chosen.ID)
	return u.mirrorContact(ctx, client, chosen), nil
}

func (u *ClientUseCase) demoteOthers(ctx context.Context, s entities.Session, contacts []entities.Contact, keepID string) {
	for _, c := range contacts {
		if c.ID == keepID || !c.Primary {
			continue
		}
		c.Primary = false
		if _, err := u.repo.SaveContact(ctx, s.CompanyID, c); err != nil {
			log.Warn().Err(err).Str("component", "client").Str("contact_id", c.ID).Msg("failed to clear previous primary contact")
		}
	}
}

// mirrorContact copies the primary contact onto client.contato. Best-effort.
func (u *ClientUseCase) mirrorContact(ctx context.Context, client entities.Client, c entities.Contact) entities.Client {
	client.Contact = c.Info()
	client.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Update(ctx, client); err != nil {
		log.Warn().Err(err).Str("component", "client").Str("client_id", client.ID).Msg("contact sync failed")
	}
	return client
}

func (u *ClientUseCase) normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if u.phones == nil || raw == "" {
		return raw
	}
	normalized, err := u.phones.Normalize(raw)
	if err != nil {
		log.Debug().Err(err).Str("component", "client").Msg("phone kept as typed")
	}
	return normalized
}

func (u *ClientUseCase) AddEquipment(ctx context.Context, s entities.Session, clientID string, in EquipmentInput) (entities.Equipment, error) {
	client, err := u.GetByID(ctx, s, clientID)
	if err != nil {
		return entities.Equipment{}, err
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return entities.Equipment{}, ErrInvalidEquipment
	}
	e := entities.Equipment{
		ID:           uuid.NewString(),
		ClientID:     client.ID,
		Description:  desc,
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Model:        strings.TrimSpace(in.Model),
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.SaveEquipment(ctx, s.CompanyID, e)
}

func (u *ClientUseCase) ListEquipments(ctx context.Context, s entities.Session, clientID string) ([]entities.Equipment, error) {
	client, err := u.GetByID(ctx, s, clientID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListEquipments(ctx, s.CompanyID, client.ID)
}
