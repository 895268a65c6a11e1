// Package source reads sample batches from, and writes exports to, local
// paths or object storage addressed as s3://bucket/key or gs://bucket/object.
package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Store abstracts blob access for one backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Scheme identifies the backend of a location.
type Scheme string

const (
	SchemeLocal Scheme = ""
	SchemeS3    Scheme = "s3"
	SchemeGCS   Scheme = "gs"
)

// ErrBadURI indicates an object URI without bucket or key.
var ErrBadURI = errors.New("invalid object uri")

// Location is a parsed input or output address.
type Location struct {
	Scheme Scheme
	Bucket string
	Key    string
}

// ParseURI splits uri into backend, bucket and key. Anything without a known
// scheme is a local path.
func ParseURI(uri string) (Location, error) {
	for _, s := range []Scheme{SchemeS3, SchemeGCS} {
		prefix := string(s) + "://"
		if !strings.HasPrefix(uri, prefix) {
			continue
		}
		rest := strings.TrimPrefix(uri, prefix)
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || strings.Trim(key, "/") == "" {
			return Location{}, fmt.Errorf("%w: %q", ErrBadURI, uri)
		}
		return Location{Scheme: s, Bucket: bucket, Key: key}, nil
	}
	return Location{Key: uri}, nil
}

func (l Location) String() string {
	if l.Scheme == SchemeLocal {
		return l.Key
	}
	return string(l.Scheme) + "://" + l.Bucket + "/" + l.Key
}

// Name is the final path element, used for format detection.
func (l Location) Name() string {
	if l.Scheme == SchemeLocal {
		return filepath.Base(l.Key)
	}
	return path.Base(l.Key)
}

// Config configures remote backends.
type Config struct {
	S3      S3Config
	Timeout time.Duration
}

// Resolver dispatches reads and writes to the backend named by each URI.
// Remote clients are created lazily and reused.
type Resolver struct {
	cfg   Config
	local Store

	mu  sync.Mutex
	s3  map[string]*S3Store
	gcs *GCSStore

	// overrides for tests
	stores map[Scheme]Store
}

// NewResolver creates a Resolver.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		cfg:   cfg,
		local: NewLocalStore(""),
		s3:    make(map[string]*S3Store),
	}
}

// WithStore forces a backend implementation for a scheme.
func (r *Resolver) WithStore(s Scheme, st Store) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stores == nil {
		r.stores = make(map[Scheme]Store)
	}
	r.stores[s] = st
	return r
}

func (r *Resolver) store(ctx context.Context, loc Location) (Store, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.stores[loc.Scheme]; ok {
		if loc.Scheme == SchemeLocal {
			return st, loc.Key, nil
		}
		return st, loc.Bucket + "/" + loc.Key, nil
	}
	switch loc.Scheme {
	case SchemeS3:
		st, ok := r.s3[loc.Bucket]
		if !ok {
			cfg := r.cfg.S3
			cfg.Bucket = loc.Bucket
			var err error
			if st, err = NewS3Store(ctx, cfg); err != nil {
				return nil, "", err
			}
			r.s3[loc.Bucket] = st
		}
		return st, loc.Key, nil
	case SchemeGCS:
		if r.gcs == nil {
			st, err := NewGCSStore(ctx)
			if err != nil {
				return nil, "", err
			}
			r.gcs = st
		}
		return r.gcs.bucket(loc.Bucket), loc.Key, nil
	}
	return r.local, loc.Key, nil
}

func (r *Resolver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, r.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// Read returns the content addressed by uri.
func (r *Resolver) Read(ctx context.Context, uri string) ([]byte, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	st, key, err := r.store(ctx, loc)
	if err != nil {
		return nil, err
	}
	return st.Get(ctx, key)
}

// Write stores data at uri.
func (r *Resolver) Write(ctx context.Context, uri string, data []byte) error {
	loc, err := ParseURI(uri)
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	st, key, err := r.store(ctx, loc)
	if err != nil {
		return err
	}
	return st.Put(ctx, key, data, ContentType(loc.Name()))
}

// Close releases remote clients.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gcs != nil {
		err := r.gcs.Close()
		r.gcs = nil
		return err
	}
	return nil
}

// ContentType guesses a MIME type from a file name.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return "text/csv"
	case ".tsv", ".txt":
		return "text/plain"
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}
