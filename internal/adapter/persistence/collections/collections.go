// Package collections names the document collections shared by the
// DynamoDB and in-memory stores.
package collections

const (
	Clients          = "clientes"
	Contacts         = "contatos"
	Equipments       = "equipamentos"
	Contracts        = "contratos"
	EquipmentQuotes  = "orcamentosEquipamentos"
	ContractQuotes   = "orcamentosContratos"
	Sales            = "vendas"
	Invoices         = "boletos"
	Receivables      = "contas_receber"
	CostCenters      = "centros_custo"
	CostCenterGroups = "centro_custo_grupos"
	Banks            = "bancos"
	Products         = "produtos"
	Tickets          = "chamados"
)

// All lists every collection, used to provision tables.
var All = []string{
	Clients, Contacts, Equipments, Contracts, EquipmentQuotes, ContractQuotes, Sales,
	Invoices, Receivables, CostCenters, CostCenterGroups, Banks, Products, Tickets,
}

// ClientScope is the partition of a client sub-collection.
func ClientScope(companyID, clientID string) string {
	return companyID + "#" + clientID
}
