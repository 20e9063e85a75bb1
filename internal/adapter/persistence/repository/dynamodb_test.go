package repository

import (
	"context"
	"errors"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records calls and serves canned answers.
type fakeDynamo struct {
	DynamoAPI

	puts      []*dynamodb.PutItemInput
	getItem   map[string]types.AttributeValue
	pages     []*dynamodb.QueryOutput
	queries   []*dynamodb.QueryInput
	transacts []*dynamodb.TransactWriteItemsInput
	putErr    error
	txErr     error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queries = append(f.queries, &cp)
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

func TestQuoteDynamoRepository_RoundTrip(t *testing.T) {
	valid := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:         "q1",
		CompanyID:  "co",
		Kind:       entities.QuoteKindContract,
		Number:     "ORC-260100001",
		Client:     entities.ClientSnapshot{ID: "c1", Name: "ACME"},
		Items:      []entities.QuoteItem{{Description: "Visita", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("150.00")}},
		Total:      decimal.RequireFromString("150"),
		Status:     entities.QuoteStatusEnviado,
		ValidUntil: &valid,
		BillingDay: 10,
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	require.NoError(t, err)

	fake := &fakeDynamo{getItem: av}
	repo := NewQuoteDynamoRepository(fake, "dev_")

	got, err := repo.GetByID(context.Background(), "co", entities.QuoteKindContract, "q1")
	require.NoError(t, err)
	assert.Equal(t, "ORC-260100001", got.Number)
	assert.Equal(t, "ACME", got.Client.Name)
	assert.True(t, got.Total.Equal(q.Total))
	require.NotNil(t, got.ValidUntil)
	assert.True(t, got.ValidUntil.Equal(valid))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("150")))
}

func TestTable_CreateMapsConditionFailure(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
	repo := NewCostCenterDynamoRepository(fake, "")

	_, err := repo.Create(context.Background(), entities.CostCenter{ID: "CC-ACME", CompanyID: "co"})
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "centros_custo", aws.ToString(fake.puts[0].TableName))
	assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(fake.puts[0].ConditionExpression))
}

func TestQueryItems_FollowsPagination(t *testing.T) {
	first, _ := attributevalue.MarshalMap(toInvoiceItem(entities.Invoice{ID: "i1", CompanyID: "co", ReferenceMonth: "2026-01"}))
	second, _ := attributevalue.MarshalMap(toInvoiceItem(entities.Invoice{ID: "i2", CompanyID: "co", ReferenceMonth: "2026-01"}))
	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: key("co", "i1")},
		{Items: []map[string]types.AttributeValue{second}},
	}}
	repo := NewInvoiceDynamoRepository(fake, "")

	got, err := repo.ListByMonth(context.Background(), "co", "2026-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "i2", got[1].ID)
	require.Len(t, fake.queries, 2)
	assert.Equal(t, "#f = :f", aws.ToString(fake.queries[0].FilterExpression))
	assert.NotEmpty(t, fake.queries[1].ExclusiveStartKey)
}

func TestDynamoUnitOfWork(t *testing.T) {
	t.Run("commits all writes in one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		uow := NewDynamoUnitOfWork(fake, "dev_")

		err := uow.Run(context.Background(), func(tx interfaces.IWriteSet) error {
			tx.CreateInvoice(entities.Invoice{ID: "i1", CompanyID: "co"})
			tx.CreateReceivable(entities.Receivable{ID: "r1", CompanyID: "co", InvoiceID: "i1"})
			tx.UpdateSale(entities.Sale{ID: "s1", CompanyID: "co"})
			return nil
		})
		require.NoError(t, err)
		require.Len(t, fake.transacts, 1)
		items := fake.transacts[0].TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, "dev_boletos", aws.ToString(items[0].Put.TableName))
		assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(items[0].Put.ConditionExpression))
		assert.Equal(t, "attribute_exists(#pk)", aws.ToString(items[2].Put.ConditionExpression))
	})

	t.Run("callback error writes nothing", func(t *testing.T) {
		fake := &fakeDynamo{}
		uow := NewDynamoUnitOfWork(fake, "")
		boom := errors.New("boom")

		err := uow.Run(context.Background(), func(tx interfaces.IWriteSet) error {
			tx.DeleteInvoice("co", "i1")
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, fake.transacts)
	})

	t.Run("cancelled create maps to already exists", func(t *testing.T) {
		fake := &fakeDynamo{txErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}}
		uow := NewDynamoUnitOfWork(fake, "")

		err := uow.Run(context.Background(), func(tx interfaces.IWriteSet) error {
			tx.UpdateQuote(entities.Quote{ID: "q1", CompanyID: "co", Kind: entities.QuoteKindEquipment})
			tx.CreateSale(entities.Sale{ID: "s1", CompanyID: "co"})
			return nil
		})
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("quote transition is guarded on the prior status", func(t *testing.T) {
		fake := &fakeDynamo{}
		uow := NewDynamoUnitOfWork(fake, "")

		err := uow.Run(context.Background(), func(tx interfaces.IWriteSet) error {
			tx.CreateSale(entities.Sale{ID: "s1", CompanyID: "co"})
			tx.TransitionQuote(entities.Quote{ID: "q1", CompanyID: "co", Kind: entities.QuoteKindEquipment, Status: entities.QuoteStatusAprovado}, entities.QuoteStatusEnviado)
			return nil
		})
		require.NoError(t, err)
		put := fake.transacts[0].TransactItems[1].Put
		assert.Equal(t, "attribute_exists(#pk) AND #status = :from", aws.ToString(put.ConditionExpression))
		assert.Equal(t, "status", put.ExpressionAttributeNames["#status"])
		assert.Equal(t, attrPK, put.ExpressionAttributeNames["#pk"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "enviado"}, put.ExpressionAttributeValues[":from"])
	})

	t.Run("failed transition maps to stale document", func(t *testing.T) {
		fake := &fakeDynamo{txErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}}
		uow := NewDynamoUnitOfWork(fake, "")

		err := uow.Run(context.Background(), func(tx interfaces.IWriteSet) error {
			tx.CreateSale(entities.Sale{ID: "s1", CompanyID: "co"})
			tx.TransitionQuote(entities.Quote{ID: "q1", CompanyID: "co", Kind: entities.QuoteKindEquipment}, entities.QuoteStatusEnviado)
			return nil
		})
		assert.ErrorIs(t, err, interfaces.ErrStaleDocument)
	})
}
