package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"medical-directory-admin/config"
	"medical-directory-admin/internal/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

type minioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStorage connects to an S3-compatible endpoint and creates the bucket when missing.
func NewMinioStorage(ctx context.Context, cfg config.StorageConfig) (service.ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	logrus.Info("Successfully connected to object storage")

	return &minioStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload overwrites any object already stored at path.
func (s *minioStorage) Upload(ctx context.Context, path string, content []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", path, err)
	}
	return PublicURL(s.publicURL, path), nil
}

func (s *minioStorage) Remove(ctx context.Context, path string) error {
	return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}

// PublicURL joins base and an object path, escaping each path segment.
func PublicURL(base, path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
