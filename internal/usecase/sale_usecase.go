package usecase

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInvalidSaleID     = errors.New("invalid sale id")
	ErrInvalidSaleStatus = errors.New("invalid sale status")
)

type ISaleUseCase interface {
	GetByID(ctx context.Context, s entities.Session, id string) (entities.Sale, error)
	List(ctx context.Context, s entities.Session, status entities.SaleStatus) ([]entities.Sale, error)
}

type SaleUseCase struct {
	repo interfaces.ISaleRepository
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

func (u *SaleUseCase) GetByID(ctx context.Context, s entities.Session, id string) (entities.Sale, error) {
	if err := checkSession(s); err != nil {
		return entities.Sale{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	sale, err := u.repo.GetByID(ctx, s.CompanyID, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}

// List returns the company sales, optionally only those in status.
func (u *SaleUseCase) List(ctx context.Context, s entities.Session, status entities.SaleStatus) ([]entities.Sale, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidSaleStatus
	}
	sales, err := u.repo.List(ctx, s.CompanyID)
	if err != nil || status == "" {
		return sales, err
	}
	out := sales[:0]
	for _, sale := range sales {
		if sale.Status == status {
			out = append(out, sale)
		}
	}
	return out, nil
}
