package entities

import "time"

// ClientContractStatus is derived from the client's contracts.
// Empty means the client never had a contract decision.
type ClientContractStatus string

const (
	ClientContractNone      ClientContractStatus = ""
	ClientContractAtivo     ClientContractStatus = "ativo"
	ClientContractCancelado ClientContractStatus = "cancelado"
)

type Address struct {
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento,omitempty"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
	ZipCode      string `json:"cep"`
}

// ContactInfo is the denormalized copy of a contact kept on other documents.
type ContactInfo struct {
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
	Role  string `json:"cargo,omitempty"`
}

// Client is the aggregate root of the commercial module.
//
// Contact, ContractStatus and the cost center fields are redundant copies
// maintained by the contact, contract and approval workflows.
type Client struct {
	ID             string               `json:"id"`
	CompanyID      string               `json:"companyId"`
	Name           string               `json:"nome"`
	Prefix         string               `json:"prefixo,omitempty"`
	Document       string               `json:"documento,omitempty"`
	Address        Address              `json:"endereco"`
	Contact        ContactInfo          `json:"contato"`
	ContractStatus ClientContractStatus `json:"statusContrato"`
	HasContract    bool                 `json:"temContrato"`
	CostCenterID   string               `json:"centroCustoId,omitempty"`
	CostCenterName string               `json:"centroCustoNome,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Contact lives in the contatos sub-collection of a client.
type Contact struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clienteId"`
	Name      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	Role      string    `json:"cargo,omitempty"`
	Primary   bool      `json:"principal"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Contact) Info() ContactInfo {
	return ContactInfo{Name: c.Name, Email: c.Email, Phone: c.Phone, Role: c.Role}
}

// Equipment lives in the equipamentos sub-collection of a client.
type Equipment struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clienteId"`
	Description  string    `json:"descricao"`
	Manufacturer string    `json:"fabricante,omitempty"`
	Model        string    `json:"modelo,omitempty"`
	SerialNumber string    `json:"numeroSerie,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ClientSnapshot is the point-in-time copy of a client stored on quotes,
// sales, contracts and invoices.
type ClientSnapshot struct {
	ID       string        `json:"id"`
	Name     string        `json:"nome"`
	Document string        `json:"documento,omitempty"`
	Address  Address       `json:"endereco"`
	Contact  ContactInfo   `json:"contato"`
	Contacts []ContactInfo `json:"contatos,omitempty"`
}

// Snapshot copies the client and the given contacts.
func (c Client) Snapshot(contacts []Contact) ClientSnapshot {
	s := ClientSnapshot{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Address:  c.Address,
		Contact:  c.Contact,
	}
	for _, ct := range contacts {
		s.Contacts = append(s.Contacts, ct.Info())
		if ct.Primary {
			s.Contact = ct.Info()
		}
	}
	return s
}
