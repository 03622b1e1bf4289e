// Package storage wraps the MinIO client used as the photo blob store.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// PublicBaseURL is the externally reachable base for object URIs,
	// e.g. http://localhost:9000
	PublicBaseURL string
	UseSSL        bool
}

type BlobStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewBlobStore initializes the MinIO client and creates the bucket if it
// doesn't exist
func NewBlobStore(cfg Config) (*BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Created bucket %s", cfg.Bucket)
	}

	return &BlobStore{client: client, bucket: cfg.Bucket, baseURL: cfg.PublicBaseURL}, nil
}

// Put uploads a blob under key and returns its public URI.
func (b *BlobStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.bucket, key), nil
}

// Remove deletes a blob. Removing a key that is already gone is not an error.
func (b *BlobStore) Remove(ctx context.Context, key string) error {
	return b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{})
}
