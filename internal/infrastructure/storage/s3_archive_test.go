package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Archive_Upload(t *testing.T) {
	f := &fakeS3{}
	a := &S3Archive{client: f, bucket: "docs", region: "sa-east-1"}

	loc, err := a.Upload(context.Background(), "orcamentos/co/ORC-1.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.s3.sa-east-1.amazonaws.com/orcamentos/co/ORC-1.pdf", loc)
	assert.Equal(t, "application/pdf", aws.ToString(f.in.ContentType))
	assert.Equal(t, []byte("%PDF"), f.body)

	f.err = errors.New("denied")
	_, err = a.Upload(context.Background(), "k", nil, "application/pdf")
	assert.Error(t, err)
}
