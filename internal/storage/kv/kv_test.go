package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.json")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return store, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, path := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get missing = ok=%v err=%v", ok, err)
	}

	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get("theme")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("Get = %q ok=%v err=%v", value, ok, err)
	}

	// Values survive a reopen.
	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, ok, _ = reopened.Get("theme")
	if !ok || value != "dark" {
		t.Fatalf("after reopen: %q ok=%v", value, ok)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete("key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("key"); ok {
		t.Error("key survived delete")
	}
	// Deleting again is a no-op.
	if err := store.Delete("key"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestOpenFileCorruptStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile on corrupt file: %v", err)
	}
	if _, ok, _ := store.Get("anything"); ok {
		t.Error("corrupt file produced entries")
	}
	if err := store.Set("key", "value"); err != nil {
		t.Errorf("Set after corrupt load: %v", err)
	}
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "local.json")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := store.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not written: %v", err)
	}
}

func TestOpenFileEmptyPath(t *testing.T) {
	if _, err := OpenFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestNamespaced(t *testing.T) {
	store, _ := openTestStore(t)
	alice := Namespaced(store, "user:1:")
	bob := Namespaced(store, "user:2:")

	if err := alice.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := bob.Set("theme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, _ := alice.Get("theme")
	if !ok || value != "dark" {
		t.Errorf("alice theme = %q ok=%v", value, ok)
	}
	value, ok, _ = bob.Get("theme")
	if !ok || value != "light" {
		t.Errorf("bob theme = %q ok=%v", value, ok)
	}

	// Raw keys carry the prefix.
	value, ok, _ = store.Get("user:1:theme")
	if !ok || value != "dark" {
		t.Errorf("raw key = %q ok=%v", value, ok)
	}

	if err := alice.Delete("theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := alice.Get("theme"); ok {
		t.Error("alice theme survived delete")
	}
	if _, ok, _ := bob.Get("theme"); !ok {
		t.Error("bob theme deleted by alice")
	}
}
