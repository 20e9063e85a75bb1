package repository

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type costCenterItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Codigo    string `dynamodbav:"codigo"`
	Nome      string `dynamodbav:"nome"`
	GrupoID   string `dynamodbav:"grupo_id"`
	GrupoNome string `dynamodbav:"grupo_nome"`
	ClienteID string `dynamodbav:"cliente_id,omitempty"`
	Ativo     bool   `dynamodbav:"ativo"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type costCenterGroupItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Codigo    string `dynamodbav:"codigo"`
	Nome      string `dynamodbav:"nome"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CostCenterDynamoRepository stores cost centers and groups keyed by code, so
// the conditional put is what keeps codes unique.
type CostCenterDynamoRepository struct {
	centers table
	groups  table
}

var _ interfaces.ICostCenterRepository = (*CostCenterDynamoRepository)(nil)

func NewCostCenterDynamoRepository(ddb DynamoAPI, tablePrefix string) *CostCenterDynamoRepository {
	return &CostCenterDynamoRepository{
		centers: table{ddb: ddb, name: tablePrefix + collections.CostCenters},
		groups:  table{ddb: ddb, name: tablePrefix + collections.CostCenterGroups},
	}
}

func (r *CostCenterDynamoRepository) GetByCode(ctx context.Context, companyID, code string) (entities.CostCenter, error) {
	it, ok, err := getItem[costCenterItem](ctx, r.centers, companyID, code)
	if err != nil || !ok {
		return entities.CostCenter{}, err
	}
	return fromCostCenterItem(it), nil
}

func (r *CostCenterDynamoRepository) Create(ctx context.Context, cc entities.CostCenter) (entities.CostCenter, error) {
	if err := r.centers.create(ctx, toCostCenterItem(cc)); err != nil {
		return entities.CostCenter{}, conflict(err)
	}
	return cc, nil
}

// Update refreshes the mutable fields and keeps created_at.
func (r *CostCenterDynamoRepository) Update(ctx context.Context, cc entities.CostCenter) (entities.CostCenter, error) {
	attrs, err := r.centers.update(ctx, cc.CompanyID, cc.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #nome = :nome, #grupo_id = :grupo_id, #grupo_nome = :grupo_nome, #cliente_id = :cliente_id, #ativo = :ativo, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":nome":       &types.AttributeValueMemberS{Value: cc.Name},
			":grupo_id":   &types.AttributeValueMemberS{Value: cc.GroupID},
			":grupo_nome": &types.AttributeValueMemberS{Value: cc.GroupName},
			":cliente_id": &types.AttributeValueMemberS{Value: cc.ClientID},
			":ativo":      &types.AttributeValueMemberBOOL{Value: cc.Active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#nome":       "nome",
			"#grupo_id":   "grupo_id",
			"#grupo_nome": "grupo_nome",
			"#cliente_id": "cliente_id",
			"#ativo":      "ativo",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || len(attrs) == 0 {
		return entities.CostCenter{}, err
	}
	var it costCenterItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.CostCenter{}, err
	}
	return fromCostCenterItem(it), nil
}

func (r *CostCenterDynamoRepository) List(ctx context.Context, companyID string) ([]entities.CostCenter, error) {
	items, err := queryItems[costCenterItem](ctx, r.centers, companyID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CostCenter, 0, len(items))
	for _, it := range items {
		out = append(out, fromCostCenterItem(it))
	}
	return out, nil
}

func (r *CostCenterDynamoRepository) GetGroupByCode(ctx context.Context, companyID, code string) (entities.CostCenterGroup, error) {
	it, ok, err := getItem[costCenterGroupItem](ctx, r.groups, companyID, code)
	if err != nil || !ok {
		return entities.CostCenterGroup{}, err
	}
	return entities.CostCenterGroup{
		ID:        it.SK,
		CompanyID: it.PK,
		Code:      it.Codigo,
		Name:      it.Nome,
		CreatedAt: stringToTime(it.CreatedAt),
	}, nil
}

func (r *CostCenterDynamoRepository) CreateGroup(ctx context.Context, g entities.CostCenterGroup) (entities.CostCenterGroup, error) {
	it := costCenterGroupItem{
		PK:        g.CompanyID,
		SK:        g.ID,
		Codigo:    g.Code,
		Nome:      g.Name,
		CreatedAt: timeToString(g.CreatedAt),
	}
	if err := r.groups.create(ctx, it); err != nil {
		return entities.CostCenterGroup{}, conflict(err)
	}
	return g, nil
}

func toCostCenterItem(cc entities.CostCenter) costCenterItem {
	return costCenterItem{
		PK:        cc.CompanyID,
		SK:        cc.ID,
		Codigo:    cc.Code,
		Nome:      cc.Name,
		GrupoID:   cc.GroupID,
		GrupoNome: cc.GroupName,
		ClienteID: cc.ClientID,
		Ativo:     cc.Active,
		CreatedAt: timeToString(cc.CreatedAt),
		UpdatedAt: timeToString(cc.UpdatedAt),
	}
}

func fromCostCenterItem(it costCenterItem) entities.CostCenter {
	return entities.CostCenter{
		ID:        it.SK,
		CompanyID: it.PK,
		Code:      it.Codigo,
		Name:      it.Nome,
		GroupID:   it.GrupoID,
		GroupName: it.GrupoNome,
		ClientID:  it.ClienteID,
		Active:    it.Ativo,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
