package request

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
	"strings"
)

type AddressRequest struct {
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf" binding:"omitempty,len=2"`
	ZipCode      string `json:"cep"`
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Complement:   strings.TrimSpace(a.Complement),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
		State:        strings.ToUpper(strings.TrimSpace(a.State)),
		ZipCode:      strings.TrimSpace(a.ZipCode),
	}
}

type ClientRequest struct {
	Name     string         `json:"nome" binding:"required"`
	Prefix   string         `json:"prefixo"`
	Document string         `json:"documento"`
	Address  AddressRequest `json:"endereco"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:     r.Name,
		Prefix:   r.Prefix,
		Document: r.Document,
		Address:  r.Address.ToEntity(),
	}
}

type ContactRequest struct {
	Name    string `json:"nome" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"telefone"`
	Role    string `json:"cargo"`
	Primary bool   `json:"principal"`
}

func (r ContactRequest) ToInput() usecase.ContactInput {
	return usecase.ContactInput{
		Name:    r.Name,
		Email:   strings.TrimSpace(r.Email),
		Phone:   r.Phone,
		Role:    r.Role,
		Primary: r.Primary,
	}
}

type EquipmentRequest struct {
	Description  string `json:"descricao" binding:"required"`
	Manufacturer string `json:"fabricante"`
	Model        string `json:"modelo"`
	SerialNumber string `json:"numeroSerie"`
}

func (r EquipmentRequest) ToInput() usecase.EquipmentInput {
	return usecase.EquipmentInput{
		Description:  r.Description,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
	}
}
