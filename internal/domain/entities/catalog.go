package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bank struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"nome"`
	Code      string    `json:"codigo"`
	Agency    string    `json:"agencia"`
	Account   string    `json:"conta"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"companyId"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao,omitempty"`
	Manufacturer string          `json:"fabricante,omitempty"`
	UnitPrice    decimal.Decimal `json:"valorUnitario"`
	CreatedAt    time.Time       `json:"createdAt"`
}
