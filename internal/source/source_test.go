package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseURI(t *testing.T) {
	cases := []struct {
		in     string
		want   Location
		name   string
		hasErr bool
	}{
		{"data/samples.csv", Location{Key: "data/samples.csv"}, "samples.csv", false},
		{"s3://lab-bucket/2024/jan.xlsx", Location{Scheme: SchemeS3, Bucket: "lab-bucket", Key: "2024/jan.xlsx"}, "jan.xlsx", false},
		{"gs://field/batch.json", Location{Scheme: SchemeGCS, Bucket: "field", Key: "batch.json"}, "batch.json", false},
		{"s3://bucket-only", Location{}, "", true},
		{"gs:///key.csv", Location{}, "", true},
		{"s3://bucket/", Location{}, "", true},
	}
	for _, c := range cases {
		got, err := ParseURI(c.in)
		if c.hasErr {
			if !errors.Is(err, ErrBadURI) {
				t.Errorf("ParseURI(%q) err = %v, want ErrBadURI", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseURI(%q): %v", c.in, err)
		}
		if got != c.want || got.Name() != c.name || got.String() != c.in {
			t.Errorf("ParseURI(%q) = %+v (name %q, string %q)", c.in, got, got.Name(), got.String())
		}
	}
}

func TestLocalStorePutGet(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir)
	ctx := context.Background()

	data := []byte("id,latitude\n")
	if err := s.Put(ctx, "exports/batch.csv", data, "text/csv"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "exports/batch.csv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Get = %q, want %q", got, data)
	}
	if _, err := os.Stat(filepath.Join(dir, "exports", "batch.csv")); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
	if _, err := s.Get(ctx, "missing.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}

type memStore struct {
	blobs map[string][]byte
	types map[string]string
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.blobs[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return b, nil
}

func (m *memStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	m.blobs[key] = data
	m.types[key] = contentType
	return nil
}

func TestResolverRoutesByScheme(t *testing.T) {
	mem := newMemStore()
	r := NewResolver(Config{Timeout: time.Second}).WithStore(SchemeS3, mem)
	defer r.Close()
	ctx := context.Background()

	if err := r.Write(ctx, "s3://lab/out/report.json", []byte(`{}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := mem.types["lab/out/report.json"]; got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	got, err := r.Read(ctx, "s3://lab/out/report.json")
	if err != nil || string(got) != `{}` {
		t.Fatalf("Read = %q, %v", got, err)
	}

	local := filepath.Join(t.TempDir(), "nested", "a.csv")
	if err := r.Write(ctx, local, []byte("x")); err != nil {
		t.Fatalf("local Write: %v", err)
	}
	if b, err := r.Read(ctx, local); err != nil || string(b) != "x" {
		t.Fatalf("local Read = %q, %v", b, err)
	}

	if _, err := r.Read(ctx, "gs://"); !errors.Is(err, ErrBadURI) {
		t.Fatalf("expected ErrBadURI, got %v", err)
	}
}

func TestContentType(t *testing.T) {
	for name, want := range map[string]string{
		"a.CSV":  "text/csv",
		"b.yml":  "application/yaml",
		"c.xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"d.bin":  "application/octet-stream",
	} {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", name, got, want)
		}
	}
}
