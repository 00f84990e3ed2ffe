package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openBackends(t *testing.T) map[Backend]BlobStore {
	t.Helper()
	dir := t.TempDir()
	out := make(map[Backend]BlobStore)
	paths := map[Backend]string{
		BackendSQLite: filepath.Join(dir, "dayboard.db"),
		BackendDiskv:  filepath.Join(dir, "diskv"),
		BackendFile:   filepath.Join(dir, "state", "dayboard.json"),
		BackendMemory: "",
	}
	for backend, path := range paths {
		store, closeFn, err := Open(backend, path)
		if err != nil {
			t.Fatalf("open %s: %v", backend, err)
		}
		t.Cleanup(func() { _ = closeFn() })
		out[backend] = store
	}
	return out
}

func TestBlobStoresGetSet(t *testing.T) {
	ctx := context.Background()
	for backend, store := range openBackends(t) {
		if _, err := store.Get(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", backend, err)
		}
		if err := store.Set(ctx, DefaultKey, []byte(`{"version":2}`)); err != nil {
			t.Fatalf("%s: set: %v", backend, err)
		}
		if err := store.Set(ctx, DefaultKey, []byte(`{"version":3}`)); err != nil {
			t.Fatalf("%s: overwrite: %v", backend, err)
		}
		got, err := store.Get(ctx, DefaultKey)
		if err != nil {
			t.Fatalf("%s: get: %v", backend, err)
		}
		if string(got) != `{"version":3}` {
			t.Fatalf("%s: unexpected value %q", backend, got)
		}
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Get(context.Background(), "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("unexpected value after reopen: %q %v", got, err)
	}
}

func TestFileStoreRecoversFromGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store, err := NewFileBlobStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected read error for garbage file")
	}
	if err := store.Set(context.Background(), "k", []byte("fresh")); err != nil {
		t.Fatalf("set over garbage: %v", err)
	}
	got, err := store.Get(context.Background(), "k")
	if err != nil || string(got) != "fresh" {
		t.Fatalf("unexpected value: %q %v", got, err)
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, _, err := Open(Backend("redis"), ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if _, _, err := Open(BackendDiskv, " "); err == nil {
		t.Fatal("expected error for empty diskv path")
	}
}
