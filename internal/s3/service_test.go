package s3

import (
	"context"
	"io"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockObjectAPI) HeadObject(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.HeadObjectOutput)
	return out, args.Error(1)
}

type mockPresigner struct {
	mock.Mock
}

func (m *mockPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*v4.PresignedHTTPRequest)
	return out, args.Error(1)
}

func bucketConfig() config.BucketConfig {
	return config.BucketConfig{
		Bucket:                "invoices-bucket",
		KeyPrefix:             "invoices/",
		PresignExpiryDuration: "10m",
	}
}

func TestNewService_Disabled(t *testing.T) {
	svc, err := NewService(config.GetDefaultConfig(), logger.NewNopLogger())
	assert.NoError(t, err)
	assert.Nil(t, svc)
}

func TestNewService_MissingBucket(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.S3.Enabled = true
	cfg.S3.Region = "eu-central-1"

	svc, err := NewService(cfg, logger.NewNopLogger())
	assert.Nil(t, svc)
	assert.True(t, ierr.IsValidation(err))
}

func TestUploadDocument(t *testing.T) {
	objects := new(mockObjectAPI)
	svc := newService(objects, new(mockPresigner), bucketConfig(), logger.NewNopLogger())

	var body []byte
	objects.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Bucket == "invoices-bucket" &&
			*in.Key == "invoices/ACME/1-ACME-2024-03-07.pdf" &&
			*in.ContentType == "application/pdf"
	})).Run(func(args mock.Arguments) {
		body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
	}).Return(&s3.PutObjectOutput{}, nil)

	key, err := svc.UploadDocument(context.Background(), NewPdfDocument("ACME/1-ACME-2024-03-07.pdf", []byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, "invoices/ACME/1-ACME-2024-03-07.pdf", key)
	assert.Equal(t, "%PDF", string(body))
	objects.AssertExpectations(t)
}

func TestUploadDocument_Errors(t *testing.T) {
	objects := new(mockObjectAPI)
	svc := newService(objects, new(mockPresigner), bucketConfig(), logger.NewNopLogger())

	_, err := svc.UploadDocument(context.Background(), NewPdfDocument("x.pdf", nil))
	assert.True(t, ierr.IsValidation(err))

	objects.On("PutObject", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	_, err = svc.UploadDocument(context.Background(), NewPdfDocument("x.pdf", []byte("%PDF")))
	assert.True(t, ierr.IsHTTPClient(err))
}

func TestExists(t *testing.T) {
	objects := new(mockObjectAPI)
	svc := newService(objects, new(mockPresigner), bucketConfig(), logger.NewNopLogger())

	objects.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "present"
	})).Return(&s3.HeadObjectOutput{}, nil)
	objects.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "missing"
	})).Return(nil, &types.NotFound{})
	objects.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "broken"
	})).Return(nil, assert.AnError)

	ok, err := svc.Exists(context.Background(), "present")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Exists(context.Background(), "broken")
	assert.True(t, ierr.IsHTTPClient(err))
}

func TestGetPresignedUrl(t *testing.T) {
	presigner := new(mockPresigner)
	svc := newService(new(mockObjectAPI), presigner, bucketConfig(), logger.NewNopLogger())

	presigner.On("PresignGetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == "invoices-bucket" && *in.Key == "invoices/a.pdf"
	})).Return(&v4.PresignedHTTPRequest{URL: "https://signed.example/a.pdf"}, nil)

	url, err := svc.GetPresignedUrl(context.Background(), "invoices/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/a.pdf", url)
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "a.pdf", "a.pdf"},
		{"invoices", "ACME/a.pdf", "invoices/ACME/a.pdf"},
		{"/invoices/", "/ACME/a.pdf", "invoices/ACME/a.pdf"},
		{"invoices", `ACME\a.pdf`, "invoices/ACME/a.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, objectKey(tt.prefix, tt.name))
	}
}
