package database

import (
	"context"
	"gestao_comercial/internal/adapter/persistence/collections"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	f := &fakeTables{existing: map[string]bool{"dev_clientes": true}}

	require.NoError(t, EnsureTables(context.Background(), f, "dev_"))
	assert.Len(t, f.created, len(collections.All)-1)
	assert.NotContains(t, f.created, "dev_clientes")
	assert.Contains(t, f.created, "dev_boletos")
}
