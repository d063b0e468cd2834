// Package storage holds schedule documents in S3-compatible object storage
// (MinIO in development). Clients never stream files through the API server;
// they upload and download against time-limited presigned URLs.
package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Service defines the interface for document storage operations
type Service interface {
	// UploadURL creates a time-limited presigned URL for uploading a document
	UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)

	// DownloadURL creates a time-limited presigned URL for downloading a document
	DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Delete removes a document from storage
	Delete(ctx context.Context, key string) error

	// Health checks if the storage backend is reachable
	Health(ctx context.Context) error
}

type service struct {
	client          *s3.Client
	publicPresigner *s3.PresignClient
	bucketName      string
}

// New creates a storage service from S3_* environment variables. Presigned
// URLs are signed against S3_PUBLIC_ENDPOINT, since the address the browser
// reaches MinIO on usually differs from the in-cluster one.
func New(ctx context.Context) (Service, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	publicEndpoint := os.Getenv("S3_PUBLIC_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucketName := os.Getenv("S3_BUCKET_NAME")
	useSSL := os.Getenv("S3_USE_SSL") == "true"

	if endpoint == "" {
		return nil, fmt.Errorf("S3_ENDPOINT environment variable is required")
	}
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY environment variables are required")
	}
	if bucketName == "" {
		bucketName = "schedule-documents"
	}
	if publicEndpoint == "" {
		publicEndpoint = endpoint
	}

	protocol := "http"
	if useSSL {
		protocol = "https"
	}

	client, err := newClient(ctx, fmt.Sprintf("%s://%s", protocol, endpoint), accessKey, secretKey)
	if err != nil {
		return nil, err
	}

	publicClient := client
	if publicEndpoint != endpoint {
		publicClient, err = newClient(ctx, fmt.Sprintf("%s://%s", protocol, publicEndpoint), accessKey, secretKey)
		if err != nil {
			return nil, err
		}
	}

	s := &service{
		client:          client,
		publicPresigner: s3.NewPresignClient(publicClient),
		bucketName:      bucketName,
	}

	if err := s.ensureBucket(ctx); err != nil {
		log.Printf("Warning: failed to ensure bucket %s exists: %v", bucketName, err)
	}

	return s, nil
}

// newClient builds an S3 client pinned to a fixed endpoint with path-style
// addressing, which MinIO requires.
func newClient(ctx context.Context, endpointURL, accessKey, secretKey string) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               endpointURL,
				SigningRegion:     "us-east-1",
				HostnameImmutable: true,
			}, nil
		},
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	}), nil
}

func (s *service) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucketName),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	log.Printf("Created storage bucket: %s", s.bucketName)
	return nil
}

func (s *service) UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("document key cannot be empty")
	}
	if contentType == "" {
		return "", fmt.Errorf("content type cannot be empty")
	}

	request, err := s.publicPresigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return request.URL, nil
}

func (s *service) DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("document key cannot be empty")
	}

	request, err := s.publicPresigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}

	return request.URL, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("document key cannot be empty")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}

	return nil
}

func (s *service) Health(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	})
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}
