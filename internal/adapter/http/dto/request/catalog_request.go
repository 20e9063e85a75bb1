package request

import (
	"gestao_comercial/internal/usecase"

	"github.com/shopspring/decimal"
)

type BankRequest struct {
	Name    string `json:"nome" binding:"required"`
	Code    string `json:"codigo"`
	Agency  string `json:"agencia"`
	Account string `json:"conta"`
}

func (r BankRequest) ToInput() usecase.BankInput {
	return usecase.BankInput{Name: r.Name, Code: r.Code, Agency: r.Agency, Account: r.Account}
}

type ProductRequest struct {
	Name         string          `json:"nome" binding:"required"`
	Description  string          `json:"descricao"`
	Manufacturer string          `json:"fabricante"`
	UnitPrice    decimal.Decimal `json:"valorUnitario"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Manufacturer: r.Manufacturer,
		UnitPrice:    r.UnitPrice,
	}
}
