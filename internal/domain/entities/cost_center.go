package entities

import "time"

// ClientsGroupCode is the fixed group every client cost center belongs to.
const (
	ClientsGroupCode = "CC-CLIENTES"
	ClientsGroupName = "Clientes"
)

// CostCenter is keyed by its generated code (ID == Code).
type CostCenter struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	GroupID   string    `json:"grupoId"`
	GroupName string    `json:"grupoNome"`
	ClientID  string    `json:"clienteId,omitempty"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CostCenterGroup struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
}
