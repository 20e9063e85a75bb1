package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBankNotFound        = errors.New("bank not found")
	ErrInvalidBankID       = errors.New("invalid bank id")
	ErrInvalidBankName     = errors.New("invalid bank name")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductPrice = errors.New("invalid product unit price")
)

type BankInput struct {
	Name    string
	Code    string
	Agency  string
	Account string
}

type ProductInput struct {
	Name         string
	Description  string
	Manufacturer string
	UnitPrice    decimal.Decimal
}

type ICatalogUseCase interface {
	CreateBank(ctx context.Context, s entities.Session, in BankInput) (entities.Bank, error)
	GetBank(ctx context.Context, s entities.Session, id string) (entities.Bank, error)
	ListBanks(ctx context.Context, s entities.Session) ([]entities.Bank, error)
	CreateProduct(ctx context.Context, s entities.Session, in ProductInput) (entities.Product, error)
	GetProduct(ctx context.Context, s entities.Session, id string) (entities.Product, error)
	ListProducts(ctx context.Context, s entities.Session) ([]entities.Product, error)
}

type CatalogUseCase struct {
	banks    interfaces.IBankRepository
	products interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(banks interfaces.IBankRepository, products interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{banks: banks, products: products}
}

func (u *CatalogUseCase) CreateBank(ctx context.Context, s entities.Session, in BankInput) (entities.Bank, error) {
	if err := checkSession(s); err != nil {
		return entities.Bank{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Bank{}, ErrInvalidBankName
	}
	return u.banks.Create(ctx, entities.Bank{
		ID:        uuid.NewString(),
		CompanyID: s.CompanyID,
		Name:      name,
		Code:      strings.TrimSpace(in.Code),
		Agency:    strings.TrimSpace(in.Agency),
		Account:   strings.TrimSpace(in.Account),
		CreatedAt: time.Now().UTC(),
	})
}

func (u *CatalogUseCase) GetBank(ctx context.Context, s entities.Session, id string) (entities.Bank, error) {
	if err := checkSession(s); err != nil {
		return entities.Bank{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bank{}, ErrInvalidBankID
	}
	b, err := u.banks.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Bank{}, err
	}
	if b.ID == "" {
		return entities.Bank{}, ErrBankNotFound
	}
	return b, nil
}

func (u *CatalogUseCase) ListBanks(ctx context.Context, s entities.Session) ([]entities.Bank, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.banks.List(ctx, s.CompanyID)
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, s entities.Session, in ProductInput) (entities.Product, error) {
	if err := checkSession(s); err != nil {
		return entities.Product{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if in.UnitPrice.IsNegative() {
		return entities.Product{}, ErrInvalidProductPrice
	}
	return u.products.Create(ctx, entities.Product{
		ID:           uuid.NewString(),
		CompanyID:    s.CompanyID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		UnitPrice:    in.UnitPrice,
		CreatedAt:    time.Now().UTC(),
	})
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, s entities.Session, id string) (entities.Product, error) {
	if err := checkSession(s); err != nil {
		return entities.Product{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, s entities.Session) ([]entities.Product, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	return u.products.List(ctx, s.CompanyID)
}
