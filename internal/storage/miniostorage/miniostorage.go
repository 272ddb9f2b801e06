// Package miniostorage provides structure to work with minio-storage
package miniostorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/config"
)

type MinioImageStorage struct {
	bucket    string
	publicURL string
	client    *minio.Client
}

const readOnlyPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// NewMinioClient binds the storage to one bucket, creating it with anonymous read access if needed
func NewMinioClient(cfg *config.Config, bucket string) (*MinioImageStorage, error) {
	if bucket == "" {
		return nil, errors.New("empty bucket name")
	}

	user := cfg.GetString("MINIO_USER")
	pass := cfg.GetString("MINIO_PASS")
	endpoint := cfg.GetString("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, errors.New("MINIO_ENDPOINT is not set")
	}
	secure := cfg.GetString("MINIO_USE_SSL") == "true"

	// подключаемся к минио - создаем клиента
	strg, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(user, pass, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := ensureBucket(ctx, strg, bucket); err != nil {
		log.Println("Failed to create bucket in MinIO:", err)
		return nil, err
	}
	if err := strg.SetBucketPolicy(ctx, bucket, fmt.Sprintf(readOnlyPolicy, bucket)); err != nil {
		return nil, fmt.Errorf("failed to set public-read policy on %q: %w", bucket, err)
	}

	base := cfg.GetString("MINIO_PUBLIC_URL")
	if base == "" {
		scheme := "http://"
		if secure {
			scheme = "https://"
		}
		base = scheme + endpoint
	}

	return &MinioImageStorage{bucket: bucket, publicURL: strings.TrimRight(base, "/"), client: strg}, nil
}

func (s *MinioImageStorage) Put(ctx context.Context, key string, size int64, contentType string, r io.Reader) error {
	if r == nil {
		return errors.New("nil reader passed to storage.Put")
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return err
	}

	return nil
}

// PublicURL is the anonymous address of key inside the bucket
func (s *MinioImageStorage) PublicURL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

func (s *MinioImageStorage) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q is gone", s.bucket)
	}
	return nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
