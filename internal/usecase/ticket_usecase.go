package usecase

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/domain/numbering"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound           = errors.New("ticket not found")
	ErrInvalidTicketID          = errors.New("invalid ticket id")
	ErrInvalidTicketDescription = errors.New("invalid ticket description")
	ErrInvalidTicketStatus      = errors.New("invalid ticket status")
	ErrInvalidTicketTransition  = errors.New("ticket status transition not allowed")
)

type TicketInput struct {
	ClientID    string
	Description string
}

type ITicketUseCase interface {
	Create(ctx context.Context, s entities.Session, in TicketInput) (entities.Ticket, error)
	GetByID(ctx context.Context, s entities.Session, id string) (entities.Ticket, error)
	List(ctx context.Context, s entities.Session) ([]entities.Ticket, error)
	ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.TicketStatus, note string) (entities.Ticket, error)
}

type TicketUseCase struct {
	repo    interfaces.ITicketRepository
	clients interfaces.IClientRepository
	locker  interfaces.ILocker
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, clients interfaces.IClientRepository, locker interfaces.ILocker) *TicketUseCase {
	return &TicketUseCase{repo: repo, clients: clients, locker: locker}
}

// Create opens a ticket numbered CHM-YYMM##### for an existing client.
func (u *TicketUseCase) Create(ctx context.Context, s entities.Session, in TicketInput) (entities.Ticket, error) {
	if err := checkSession(s); err != nil {
		return entities.Ticket{}, err
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Ticket{}, ErrInvalidClientID
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return entities.Ticket{}, ErrInvalidTicketDescription
	}
	client, err := u.clients.GetByID(ctx, s.CompanyID, clientID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if client.ID == "" {
		return entities.Ticket{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	t := entities.Ticket{
		ID:          uuid.NewString(),
		CompanyID:   s.CompanyID,
		ClientID:    client.ID,
		Description: desc,
		Status:      entities.TicketStatusAberto,
		History:     []entities.AuditEntry{entities.NewAuditEntry(s, string(entities.TicketStatusAberto), "", now)},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	key := fmt.Sprintf("ticket-number:%s:%s", s.CompanyID, numbering.MonthKey(now))
	err = withLock(ctx, u.locker, key, numberingLockTTL, func() error {
		existing, err := u.repo.List(ctx, s.CompanyID)
		if err != nil {
			return err
		}
		numbers := make([]string, 0, len(existing))
		for _, e := range existing {
			numbers = append(numbers, e.Number)
		}
		t.Number = numbering.Format(numbering.TicketPrefix, now, numbering.MaxSequence(numbers, numbering.TicketPrefix, now)+1)
		t, err = u.repo.Create(ctx, t)
		return err
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	return t, nil
}

func (u *TicketUseCase) GetByID(ctx context.Context, s entities.Session, id string) (entities.Ticket, error) {
	if err := checkSession(s); err != nil {
		return entities.Ticket{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	t, err := u.repo.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context, s entities.Session) ([]entities.Ticket, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, s.CompanyID)
}

func (u *TicketUseCase) ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.TicketStatus, note string) (entities.Ticket, error) {
	if !status.Valid() {
		return entities.Ticket{}, ErrInvalidTicketStatus
	}
	t, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if !moveTicket(&t, s, status, strings.TrimSpace(note), time.Now().UTC()) {
		return entities.Ticket{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTicketTransition, t.Status, status)
	}
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}
