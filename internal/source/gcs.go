package source

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStore wraps a Google Cloud Storage client shared across buckets.
// It uses Application Default Credentials.
type GCSStore struct {
	client *gcs.Client
}

// NewGCSStore creates a GCS client.
func NewGCSStore(ctx context.Context) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStore{client: client}, nil
}

// Close releases the client.
func (s *GCSStore) Close() error { return s.client.Close() }

func (s *GCSStore) bucket(name string) Store {
	return gcsBucket{h: s.client.Bucket(name), name: name}
}

type gcsBucket struct {
	h    *gcs.BucketHandle
	name string
}

func (b gcsBucket) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := b.h.Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s/%s: %w", b.name, key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (b gcsBucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	w := b.h.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s/%s: %w", b.name, key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s/%s: %w", b.name, key, err)
	}
	return nil
}
