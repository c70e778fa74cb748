package s3

import (
	"bytes"
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/invocli/invocli/internal/config"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
)

const (
	defaultPresignExpiryDuration = 30 * time.Minute
)

// Service uploads generated invoices to the configured bucket
type Service interface {
	// UploadDocument stores the document and returns its object key
	UploadDocument(ctx context.Context, document *Document) (string, error)
	GetPresignedUrl(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type s3ServiceImpl struct {
	objects   objectAPI
	presigner presignAPI
	config    config.BucketConfig
	log       *logger.Logger
}

// NewService returns nil when uploads are disabled; callers must check for it
func NewService(cfg *config.Configuration, log *logger.Logger) (Service, error) {
	if !cfg.S3.Enabled {
		return nil, nil
	}
	if cfg.S3.InvoiceBucketConfig.Bucket == "" {
		return nil, ierr.NewError("s3 bucket is not configured").
			WithHint("Set s3.invoice.bucket or disable s3 uploads").
			Mark(ierr.ErrValidation)
	}

	awsCfg, err := cfg.S3.LoadAwsConfig(context.Background())
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	client := config.NewS3Client(awsCfg)
	return newService(client, s3.NewPresignClient(client), cfg.S3.InvoiceBucketConfig, log), nil
}

func newService(objects objectAPI, presigner presignAPI, bucket config.BucketConfig, log *logger.Logger) *s3ServiceImpl {
	return &s3ServiceImpl{
		objects:   objects,
		presigner: presigner,
		config:    bucket,
		log:       log,
	}
}

func (s *s3ServiceImpl) key(name string) string {
	return objectKey(s.config.KeyPrefix, name)
}

// Exists implements Service.
func (s *s3ServiceImpl) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.objects.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var nsk *types.NoSuchKey
		var nske *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nske) {
			return false, nil
		}
		return false, ierr.WithError(err).
			WithMessagef("failed to check if document exists, key:%s", key).
			Mark(ierr.ErrHTTPClient)
	}

	return true, nil
}

// GetPresignedUrl implements Service.
func (s *s3ServiceImpl) GetPresignedUrl(ctx context.Context, key string) (string, error) {
	duration, err := time.ParseDuration(s.config.PresignExpiryDuration)
	if err != nil || duration <= 0 {
		duration = defaultPresignExpiryDuration
	}

	result, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}

// UploadDocument implements Service.
func (s *s3ServiceImpl) UploadDocument(ctx context.Context, document *Document) (string, error) {
	if document == nil || len(document.Data) == 0 {
		return "", ierr.NewError("document is empty").Mark(ierr.ErrValidation)
	}
	key := s.key(document.Name)

	_, err := s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document.Data),
		ContentType: aws.String(document.Kind.ContentType()),
	})
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to upload document").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	s.log.Debugw("uploaded document", "bucket", s.config.Bucket, "key", key, "bytes", len(document.Data))
	return key, nil
}
