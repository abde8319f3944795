package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectStorage is what the entity services need from the bucket: upload a
// new object and best-effort delete an old one by its public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, originalName, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

var ErrStorageNotConfigured = errors.New("object storage credentials not configured")

// StorageConfig is read from the environment in main. Any S3-compatible
// provider works (AWS S3, MinIO, R2, Supabase storage).
type StorageConfig struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	PublicURL    string
	Folder       string
	UsePathStyle bool
}

// StorageService implements ObjectStorage over an S3-compatible bucket.
// With no credentials configured it stays disabled: uploads fail, deletes
// warn and no-op, and the rest of the application keeps working.
type StorageService struct {
	client    *s3.Client
	bucket    string
	publicURL string
	folder    string
}

func NewStorageService(cfg StorageConfig) (*StorageService, error) {
	svc := &StorageService{
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		folder:    strings.Trim(cfg.Folder, "/"),
	}
	if svc.folder == "" {
		svc.folder = "uploads"
	}

	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		log.Println("⚠️  Object storage credentials missing; uploads disabled")
		return svc, nil
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	svc.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	if svc.publicURL == "" && cfg.Endpoint != "" {
		svc.publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return svc, nil
}

func (s *StorageService) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload stores the file under a collision-free key (<folder>/<uuid><ext>)
// and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, data []byte, originalName, contentType string) (string, error) {
	if !s.Enabled() {
		return "", ErrStorageNotConfigured
	}

	ext := strings.ToLower(path.Ext(originalName))
	key := s.folder + "/" + uuid.NewString() + ext

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes the object a public URL points at. It is strictly
// best-effort: a missing client, a URL outside the configured bucket, or a
// failed provider call all log a warning and leave the caller unaffected.
func (s *StorageService) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	if !s.Enabled() {
		log.Printf("warning: storage disabled, skipping delete of %s", fileURL)
		return nil
	}

	key, ok := s.KeyFromURL(fileURL)
	if !ok {
		log.Printf("warning: %s is not in the configured bucket, skipping delete", fileURL)
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("warning: failed to delete object %s: %v", key, err)
		return err
	}
	return nil
}

// KeyFromURL extracts the object key from a public URL. It only accepts URLs
// under the configured public base URL; everything else is treated as an
// external image the bucket does not own.
func (s *StorageService) KeyFromURL(fileURL string) (string, bool) {
	if s == nil || s.publicURL == "" {
		return "", false
	}
	if !strings.HasPrefix(fileURL, s.publicURL+"/") {
		return "", false
	}
	key := strings.TrimPrefix(fileURL, s.publicURL+"/")
	key = strings.SplitN(key, "?", 2)[0]
	if key == "" {
		return "", false
	}
	return key, true
}
