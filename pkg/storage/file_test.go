package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/RD107924/ruandi-shop-v2/config"
)

func newFileStorage(t *testing.T) *FileStorage {
	conf := &config.Config{Storage: &config.Storage{Dir: t.TempDir()}}
	s, err := NewFileStorage(conf)
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}
	return s
}

func TestFileStorageRoundTrip(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	if err := s.Save(ctx, "ruandiCart", []byte(`{"42":{}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	val, err := s.Load(ctx, "ruandiCart")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(val) != `{"42":{}}` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestFileStorageMissingKey(t *testing.T) {
	s := newFileStorage(t)

	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStorageDelete(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	if err := s.Save(ctx, "adminToken", []byte("tok")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(ctx, "adminToken"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(ctx, "adminToken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// 删不存在的键不算错
	if err := s.Delete(ctx, "adminToken"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestFileStorageOverwrite(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	if err := s.Save(ctx, "ruandiCart", []byte("old")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, "ruandiCart", []byte("new")); err != nil {
		t.Fatalf("save: %v", err)
	}
	val, err := s.Load(ctx, "ruandiCart")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(val) != "new" {
		t.Fatalf("expected last write to win, got %s", val)
	}
}
