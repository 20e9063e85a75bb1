package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Every table shares the same key schema:
//   - PK: pk (company id, or company#client for client sub-collections)
//   - SK: sk (document id)
const (
	attrPK = "pk"
	attrSK = "sk"
)

var (
	condNotExists = aws.String("attribute_not_exists(#pk)")
	condExists    = aws.String("attribute_exists(#pk)")
	pkNames       = map[string]string{"#pk": attrPK}
)

type table struct {
	ddb  DynamoAPI
	name string
}

func key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: pk},
		attrSK: &types.AttributeValueMemberS{Value: sk},
	}
}

// create writes item only if its key is free. A taken key returns
// errConditionFailed so callers can map it to their own sentinel.
func (t table) create(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      condNotExists,
		ExpressionAttributeNames: pkNames,
	})
	return mapConditionErr(err)
}

// replace overwrites an existing document. It reports false when the
// document does not exist.
func (t table) replace(ctx context.Context, item any) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      condExists,
		ExpressionAttributeNames: pkNames,
	})
	if err = mapConditionErr(err); err != nil {
		if errors.Is(err, errConditionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// upsert writes item unconditionally.
func (t table) upsert(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	return err
}

func (t table) delete(ctx context.Context, pk, sk string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       key(pk, sk),
	})
	return err
}

// update applies a SET expression to an existing document and returns the new
// attributes, or nil when the document does not exist.
func (t table) update(
	ctx context.Context,
	pk, sk string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (map[string]types.AttributeValue, error) {
	updateExpr, values, names := build(nowString())

	out, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       key(pk, sk),
		ConditionExpression:       condExists,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, pkNames),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err = mapConditionErr(err); err != nil {
		if errors.Is(err, errConditionFailed) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

// getItem loads one document; ok is false when it does not exist.
func getItem[T any](ctx context.Context, t table, pk, sk string) (T, bool, error) {
	var it T
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            key(pk, sk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// filter is an optional FilterExpression for queries.
type filter struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

func eqFilter(attr, value string) *filter {
	return &filter{
		expr:   "#f = :f",
		names:  map[string]string{"#f": attr},
		values: map[string]types.AttributeValue{":f": &types.AttributeValueMemberS{Value: value}},
	}
}

func prefixFilter(attr, prefix string) *filter {
	return &filter{
		expr:   "begins_with(#f, :f)",
		names:  map[string]string{"#f": attr},
		values: map[string]types.AttributeValue{":f": &types.AttributeValueMemberS{Value: prefix}},
	}
}

// queryItems reads a whole partition, following LastEvaluatedKey.
func queryItems[T any](ctx context.Context, t table, pk string, f *filter) ([]T, error) {
	names := map[string]string{"#pk": attrPK}
	values := map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: pk}}
	in := &dynamodb.QueryInput{
		TableName:              aws.String(t.name),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ConsistentRead:         aws.Bool(true),
	}
	if f != nil {
		in.FilterExpression = aws.String(f.expr)
		names = mergeNames(names, f.names)
		for k, v := range f.values {
			values[k] = v
		}
	}
	in.ExpressionAttributeNames = names
	in.ExpressionAttributeValues = values

	var out []T
	for {
		page, err := t.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

var errConditionFailed = errors.New("condition check failed")

func mapConditionErr(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return errConditionFailed
	}
	return err
}
