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
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrContractNotFound          = errors.New("contract not found")
	ErrInvalidContractID         = errors.New("invalid contract id")
	ErrInvalidContractStatus     = errors.New("invalid contract status")
	ErrInvalidContractSituation  = errors.New("invalid contract situacao")
	ErrInvalidContractTransition = errors.New("contract transition not allowed")
	ErrContractNotApproved       = errors.New("situacao only applies to approved contracts")
	ErrInvalidMonthlyValue       = errors.New("invalid monthly value")
)

type ContractInput struct {
	ClientID       string
	CoveredEquip   []string
	UncoveredEquip []string
	MonthlyValue   decimal.Decimal
	BillingDay     int
	BankID         string
	Periodicity    string
	StartDate      *time.Time
	Notes          string
}

// ContractAdminInput holds the fields editable after creation. Equipment
// lists are fixed.
type ContractAdminInput struct {
	MonthlyValue decimal.Decimal
	BillingDay   int
	BankID       string
	Periodicity  string
	Notes        string
}

type IContractUseCase interface {
	Create(ctx context.Context, s entities.Session, in ContractInput) (entities.Contract, error)
	UpdateAdministrative(ctx context.Context, s entities.Session, id string, in ContractAdminInput) (entities.Contract, error)
	ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.ContractStatus) (entities.Contract, error)
	ChangeSituacao(ctx context.Context, s entities.Session, id string, situacao entities.ContractSituation) (entities.Contract, error)
	GetByID(ctx context.Context, s entities.Session, id string) (entities.Contract, error)
	List(ctx context.Context, s entities.Session) ([]entities.Contract, error)
	ListByClient(ctx context.Context, s entities.Session, clientID string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo           interfaces.IContractRepository
	clients        interfaces.IClientRepository
	costCenterRepo interfaces.ICostCenterRepository
	banks          interfaces.IBankRepository
	uow            interfaces.IUnitOfWork
	costCenters    ICostCenterUseCase
	locker         interfaces.ILocker
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	clients interfaces.IClientRepository,
	costCenterRepo interfaces.ICostCenterRepository,
	banks interfaces.IBankRepository,
	uow interfaces.IUnitOfWork,
	costCenters ICostCenterUseCase,
	locker interfaces.ILocker,
) *ContractUseCase {
	return &ContractUseCase{
		repo:           repo,
		clients:        clients,
		costCenterRepo: costCenterRepo,
		banks:          banks,
		uow:            uow,
		costCenters:    costCenters,
		locker:         locker,
	}
}

func (u *ContractUseCase) Create(ctx context.Context, s entities.Session, in ContractInput) (entities.Contract, error) {
	if err := checkSession(s); err != nil {
		return entities.Contract{}, err
	}
	if err := validateBilling(in.MonthlyValue, in.BillingDay); err != nil {
		return entities.Contract{}, err
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Contract{}, ErrInvalidClientID
	}
	client, err := u.clients.GetByID(ctx, s.CompanyID, clientID)
	if err != nil {
		return entities.Contract{}, err
	}
	if client.ID == "" {
		return entities.Contract{}, ErrClientNotFound
	}
	contacts, err := u.clients.ListContacts(ctx, s.CompanyID, client.ID)
	if err != nil {
		return entities.Contract{}, err
	}

	now := time.Now().UTC()
	c := entities.Contract{
		ID:             uuid.NewString(),
		CompanyID:      s.CompanyID,
		Client:         client.Snapshot(contacts),
		CoveredEquip:   trimAll(in.CoveredEquip),
		UncoveredEquip: trimAll(in.UncoveredEquip),
		MonthlyValue:   in.MonthlyValue,
		BillingDay:     in.BillingDay,
		Periodicity:    strings.TrimSpace(in.Periodicity),
		StartDate:      in.StartDate,
		Status:         entities.ContractStatusEmElaboracao,
		Notes:          strings.TrimSpace(in.Notes),
		History:        []entities.AuditEntry{entities.NewAuditEntry(s, "criado", "", now)},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	u.setBank(ctx, s.CompanyID, &c, in.BankID)

	err = withContractNumber(ctx, u.repo, u.locker, s.CompanyID, now, func(number string) error {
		c.Number = number
		c, err = u.repo.Create(ctx, c)
		return err
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (u *ContractUseCase) UpdateAdministrative(ctx context.Context, s entities.Session, id string, in ContractAdminInput) (entities.Contract, error) {
	c, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := validateBilling(in.MonthlyValue, in.BillingDay); err != nil {
		return entities.Contract{}, err
	}

	now := time.Now().UTC()
	c.MonthlyValue = in.MonthlyValue
	c.BillingDay = in.BillingDay
	c.Periodicity = strings.TrimSpace(in.Periodicity)
	c.Notes = strings.TrimSpace(in.Notes)
	u.setBank(ctx, s.CompanyID, &c, in.BankID)
	c.History = append(c.History, entities.NewAuditEntry(s, "editado", "", now))
	c.UpdatedAt = now

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return updated, nil
}

func (u *ContractUseCase) ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.ContractStatus) (entities.Contract, error) {
	if !status.Valid() {
		return entities.Contract{}, ErrInvalidContractStatus
	}
	c, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if !c.Status.CanTransitionTo(status) {
		return entities.Contract{}, fmt.Errorf("%w: %s -> %s", ErrInvalidContractTransition, c.Status, status)
	}

	now := time.Now().UTC()
	c.History = append(c.History, entities.NewAuditEntry(s, "status", string(c.Status)+" -> "+string(status), now))
	c.Status = status
	if status == entities.ContractStatusAprovado && c.Situation == entities.ContractSituationNone {
		c.Situation = entities.ContractSituationAtivo
		if c.StartDate == nil {
			c.StartDate = &now
		}
	}
	c.UpdatedAt = now
	return u.saveWithClientSync(ctx, s, c)
}

func (u *ContractUseCase) ChangeSituacao(ctx context.Context, s entities.Session, id string, situacao entities.ContractSituation) (entities.Contract, error) {
	if situacao == entities.ContractSituationNone || !situacao.Valid() {
		return entities.Contract{}, ErrInvalidContractSituation
	}
	c, err := u.GetByID(ctx, s, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status != entities.ContractStatusAprovado {
		return entities.Contract{}, ErrContractNotApproved
	}
	if !c.Situation.CanTransitionTo(situacao) {
		return entities.Contract{}, fmt.Errorf("%w: %s -> %s", ErrInvalidContractTransition, c.Situation, situacao)
	}

	now := time.Now().UTC()
	c.History = append(c.History, entities.NewAuditEntry(s, "situacao", string(c.Situation)+" -> "+string(situacao), now))
	c.Situation = situacao
	c.UpdatedAt = now
	return u.saveWithClientSync(ctx, s, c)
}

// saveWithClientSync writes the edited contract together with the client
// statusContrato re-derived from all of its contracts and the cost center
// active flag that follows it.
func (u *ContractUseCase) saveWithClientSync(ctx context.Context, s entities.Session, edited entities.Contract) (entities.Contract, error) {
	contracts, err := u.repo.ListByClientID(ctx, s.CompanyID, edited.Client.ID)
	if err != nil {
		return entities.Contract{}, err
	}
	replaced := false
	for i := range contracts {
		if contracts[i].ID == edited.ID {
			contracts[i] = edited
			replaced = true
		}
	}
	if !replaced {
		contracts = append(contracts, edited)
	}

	client, err := u.clients.GetByID(ctx, s.CompanyID, edited.Client.ID)
	if err != nil {
		return entities.Contract{}, err
	}

	var (
		clientChanged bool
		cc            entities.CostCenter
		ccChanged     bool
	)
	if client.ID != "" {
		status := entities.DeriveClientContractStatus(contracts, edited, client.ContractStatus)
		if status != client.ContractStatus {
			client.ContractStatus = status
			client.UpdatedAt = edited.UpdatedAt
			clientChanged = true
		}
		if client.CostCenterID != "" && u.costCenterRepo != nil {
			if cc, err = u.costCenterRepo.GetByCode(ctx, s.CompanyID, client.CostCenterID); err != nil {
				return entities.Contract{}, err
			}
			active := client.ContractStatus == entities.ClientContractAtivo
			if cc.ID != "" && cc.Active != active {
				cc.Active = active
				cc.UpdatedAt = edited.UpdatedAt
				ccChanged = true
			}
		}
	}

	err = u.uow.Run(ctx, func(tx interfaces.IWriteSet) error {
		tx.UpdateContract(edited)
		if clientChanged {
			tx.UpdateClient(client)
		}
		if ccChanged {
			tx.UpdateCostCenter(cc)
		}
		return nil
	})
	if err != nil {
		return entities.Contract{}, fmt.Errorf("save contract %s: %w", edited.ID, err)
	}
	log.Info().Str("component", "contract").Str("contract_id", edited.ID).
		Str("status", string(edited.Status)).Str("situacao", string(edited.Situation)).
		Str("client_status", string(client.ContractStatus)).Msg("contract saved")

	if edited.InForce() && client.ID != "" {
		ensureCostCenterBestEffort(ctx, u.costCenters, s, client, "contract_approval")
	}
	return edited, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, s entities.Session, id string) (entities.Contract, error) {
	if err := checkSession(s); err != nil {
		return entities.Contract{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) List(ctx context.Context, s entities.Session) ([]entities.Contract, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, s.CompanyID)
}

func (u *ContractUseCase) ListByClient(ctx context.Context, s entities.Session, clientID string) ([]entities.Contract, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, s.CompanyID, clientID)
}

func (u *ContractUseCase) setBank(ctx context.Context, companyID string, c *entities.Contract, bankID string) {
	bankID = strings.TrimSpace(bankID)
	if bankID == c.BankID && c.BankName != "" {
		return
	}
	c.BankID = bankID
	c.BankName = ""
	if bankID == "" || u.banks == nil {
		return
	}
	if bank, err := u.banks.GetByID(ctx, companyID, bankID); err == nil {
		c.BankName = bank.Name
	}
}

// withContractNumber reserves the next CTR number of the month and runs fn
// with it while holding the numbering lock, so fn must persist the contract.
func withContractNumber(ctx context.Context, repo interfaces.IContractRepository, locker interfaces.ILocker, companyID string, now time.Time, fn func(number string) error) error {
	key := fmt.Sprintf("contract-number:%s:%s", companyID, numbering.MonthKey(now))
	return withLock(ctx, locker, key, numberingLockTTL, func() error {
		numbers, err := repo.Numbers(ctx, companyID, numbering.ContractPrefix+numbering.MonthKey(now))
		if err != nil {
			return err
		}
		return fn(numbering.Format(numbering.ContractPrefix, now, numbering.MaxSequence(numbers, numbering.ContractPrefix, now)+1))
	})
}

func validateBilling(monthly decimal.Decimal, day int) error {
	if monthly.IsNegative() {
		return ErrInvalidMonthlyValue
	}
	if day < 1 || day > 31 {
		return ErrInvalidBillingDay
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
