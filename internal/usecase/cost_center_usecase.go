package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/costcenter"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrCostCenterNotFound    = errors.New("cost center not found")
	ErrInvalidCostCenterID   = errors.New("invalid cost center id")
	ErrInvalidCostCenterName = errors.New("client name does not produce a cost center code")
)

const costCenterLockTTL = 15 * time.Second

// ICostCenterUseCase is the single place that creates or reuses client cost
// centers. Client save, quote approval and contract approval all call
// EnsureForClient.
type ICostCenterUseCase interface {
	EnsureForClient(ctx context.Context, s entities.Session, client entities.Client) (entities.CostCenter, error)
	List(ctx context.Context, s entities.Session) ([]entities.CostCenter, error)
	SetActive(ctx context.Context, s entities.Session, id string, active bool) (entities.CostCenter, error)
}

type CostCenterUseCase struct {
	repo    interfaces.ICostCenterRepository
	clients interfaces.IClientRepository
	locker  interfaces.ILocker
}

var _ ICostCenterUseCase = (*CostCenterUseCase)(nil)

func NewCostCenterUseCase(repo interfaces.ICostCenterRepository, clients interfaces.IClientRepository, locker interfaces.ILocker) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo, clients: clients, locker: locker}
}

// EnsureForClient looks the client cost center up by its generated code and
// reuses it (refreshing name, group and active flag) or creates it. The id
// and name are written back onto the client when they changed.
func (u *CostCenterUseCase) EnsureForClient(ctx context.Context, s entities.Session, client entities.Client) (entities.CostCenter, error) {
	if err := checkSession(s); err != nil {
		return entities.CostCenter{}, err
	}
	name := strings.TrimSpace(client.Name)
	code := costcenter.GenerateCode(name)
	if name == "" || code == costcenter.CodePrefix {
		return entities.CostCenter{}, ErrInvalidCostCenterName
	}

	var cc entities.CostCenter
	err := withLock(ctx, u.locker, "cost-center:"+s.CompanyID+":"+code, costCenterLockTTL, func() error {
		group, err := u.ensureGroup(ctx, s.CompanyID)
		if err != nil {
			return err
		}
		cc, err = u.createOrReuse(ctx, s.CompanyID, code, name, client.ID, group)
		return err
	})
	if err != nil {
		return entities.CostCenter{}, err
	}

	if client.ID != "" && (client.CostCenterID != cc.ID || client.CostCenterName != cc.Name) {
		client.CostCenterID = cc.ID
		client.CostCenterName = cc.Name
		client.UpdatedAt = time.Now().UTC()
		if _, err := u.clients.Update(ctx, client); err != nil {
			return cc, err
		}
	}
	return cc, nil
}

func (u *CostCenterUseCase) ensureGroup(ctx context.Context, companyID string) (entities.CostCenterGroup, error) {
	g, err := u.repo.GetGroupByCode(ctx, companyID, entities.ClientsGroupCode)
	if err != nil || g.ID != "" {
		return g, err
	}
	g = entities.CostCenterGroup{
		ID:        entities.ClientsGroupCode,
		CompanyID: companyID,
		Code:      entities.ClientsGroupCode,
		Name:      entities.ClientsGroupName,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.CreateGroup(ctx, g)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return u.repo.GetGroupByCode(ctx, companyID, entities.ClientsGroupCode)
	}
	return created, err
}

func (u *CostCenterUseCase) createOrReuse(ctx context.Context, companyID, code, name, clientID string, group entities.CostCenterGroup) (entities.CostCenter, error) {
	existing, err := u.repo.GetByCode(ctx, companyID, code)
	if err != nil {
		return entities.CostCenter{}, err
	}
	if existing.ID == "" {
		now := time.Now().UTC()
		cc := entities.CostCenter{
			ID:        code,
			CompanyID: companyID,
			Code:      code,
			Name:      name,
			GroupID:   group.ID,
			GroupName: group.Name,
			ClientID:  clientID,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err := u.repo.Create(ctx, cc)
		if err == nil {
			log.Info().Str("component", "cost_center").Str("company_id", companyID).Str("code", code).Msg("cost center created")
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.CostCenter{}, err
		}
		// another replica won the conditional create
		if existing, err = u.repo.GetByCode(ctx, companyID, code); err != nil {
			return entities.CostCenter{}, err
		}
	}

	if existing.Name == name && existing.GroupID == group.ID && existing.Active && existing.ClientID != "" {
		return existing, nil
	}
	existing.Name = name
	existing.GroupID = group.ID
	existing.GroupName = group.Name
	existing.Active = true
	if existing.ClientID == "" {
		existing.ClientID = clientID
	}
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *CostCenterUseCase) List(ctx context.Context, s entities.Session) ([]entities.CostCenter, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, s.CompanyID)
}

func (u *CostCenterUseCase) SetActive(ctx context.Context, s entities.Session, id string, active bool) (entities.CostCenter, error) {
	if err := checkSession(s); err != nil {
		return entities.CostCenter{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostCenter{}, ErrInvalidCostCenterID
	}
	cc, err := u.repo.GetByCode(ctx, s.CompanyID, id)
	if err != nil {
		return entities.CostCenter{}, err
	}
	if cc.ID == "" {
		return entities.CostCenter{}, ErrCostCenterNotFound
	}
	if cc.Active == active {
		return cc, nil
	}
	cc.Active = active
	cc.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, cc)
}

// ensureCostCenterBestEffort is used by workflows where a cost center
// failure must not fail the caller.
func ensureCostCenterBestEffort(ctx context.Context, costCenters ICostCenterUseCase, s entities.Session, client entities.Client, origin string) {
	if costCenters == nil || client.ID == "" {
		return
	}
	if _, err := costCenters.EnsureForClient(ctx, s, client); err != nil {
		log.Warn().Err(err).Str("component", "cost_center").Str("origin", origin).
			Str("company_id", s.CompanyID).Str("client_id", client.ID).Msg("cost center ensure failed")
	}
}
