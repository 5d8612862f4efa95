package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"solosuccess.app/api/common"
	"solosuccess.app/api/core/config"
)

// ErrDisabled is returned for uploads and downloads when no bucket is configured.
var ErrDisabled = errors.New("object storage is not configured")

// ObjectStore holds briefcase document bodies.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that names the file as filename.
	PresignGet(ctx context.Context, key, filename string) (string, error)
}

// S3API is the subset of the S3 client used here.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the subset of the S3 presign client used here.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
}

// PresignedRequest mirrors the fields of the SDK's presigned request that callers need.
type PresignedRequest struct {
	URL string
}

// ObjectKey lays out document objects per user and briefcase.
func ObjectKey(userID, briefcaseID, documentID int64, filename string) string {
	return fmt.Sprintf("users/%d/briefcases/%d/%d/%s", userID, briefcaseID, documentID, common.SafeFilename(filename))
}

type S3Store struct {
	client    S3API
	presigner Presigner
	bucket    string
	ttl       time.Duration
}

// NewS3Store loads the default AWS chain, or static keys when the config carries them.
// A custom endpoint switches to path-style addressing for R2 and MinIO.
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, sdkPresigner{s3.NewPresignClient(client)}, cfg.Bucket, cfg.PresignTT), nil
}

func NewS3StoreWithClient(client S3API, presigner Presigner, bucket string, ttl time.Duration) *S3Store {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Store{client: client, presigner: presigner, bucket: bucket, ttl: ttl}
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("putting object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) PresignGet(ctx context.Context, key, filename string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(mime.FormatMediaType("attachment", map[string]string{"filename": filename})),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}
	return req.URL, nil
}

type sdkPresigner struct {
	client *s3.PresignClient
}

func (p sdkPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	req, err := p.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

type noopStore struct{}

// NewNoopStore rejects uploads and downloads. Deletes succeed so cleanup paths keep working.
func NewNoopStore() ObjectStore {
	return noopStore{}
}

func (noopStore) Put(ctx context.Context, key string, _ io.Reader, _ string) error {
	slog.WarnContext(ctx, "object storage disabled, rejecting upload", "key", key)
	return ErrDisabled
}

func (noopStore) Delete(context.Context, string) error { return nil }

func (noopStore) PresignGet(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}
