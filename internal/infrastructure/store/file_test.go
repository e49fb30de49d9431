package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luminaweb/backend/internal/domain"
)

func TestFileStore_SetAndGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	value := []byte(`{"items":[]}`)
	if err := store.Set(ctx, "lumina_cart", value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "lumina_cart")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Errorf("error = %v, want ErrKeyNotFound", err)
	}
}

func TestFileStore_Delete(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx := context.Background()

	t.Run("deletes stored key", func(t *testing.T) {
		store.Set(ctx, "key", []byte("value"))
		if err := store.Delete(ctx, "key"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := store.Get(ctx, "key"); !errors.Is(err, domain.ErrKeyNotFound) {
			t.Errorf("error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("deleting absent key is a no-op", func(t *testing.T) {
		if err := store.Delete(ctx, "never-stored"); err != nil {
			t.Errorf("Delete() error = %v, want nil", err)
		}
	})
}

func TestFileStore_RejectsUnsafeKeys(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../escape", "a/b", "", "key with spaces"} {
		if err := store.Set(ctx, key, []byte("x")); err == nil {
			t.Errorf("Set(%q) error = nil, want invalid key error", key)
		}
		if _, err := store.Get(ctx, key); err == nil {
			t.Errorf("Get(%q) error = nil, want invalid key error", key)
		}
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := first.Set(ctx, "lumina_currency", []byte("eur")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}
	got, err := second.Get(ctx, "lumina_currency")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if string(got) != "eur" {
		t.Errorf("Get() = %q, want eur", got)
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(dir)

	store.Set(context.Background(), "key", []byte("value"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}
