package filestorage

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	name, err := store.Save(strings.NewReader("submission body"), "essay.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("stored name %q should keep the original extension", name)
	}
	if name == "essay.pdf" {
		t.Error("stored name should not be the original name")
	}

	r, err := store.Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "submission body" {
		t.Errorf("body = %q", body)
	}
}

func TestLocalStorageUniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	first, err := store.Save(strings.NewReader("a"), "same.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(strings.NewReader("b"), "same.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Error("two saves of the same original name must not collide")
	}
}

func TestLocalStorageOpenMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := store.Open("nope.txt"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Open missing = %v, want ErrFileNotFound", err)
	}
}

func TestLocalStorageOpenRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	for _, name := range []string{"../etc/passwd", "a/b.txt", ""} {
		if _, err := store.Open(name); !errors.Is(err, ErrFileNotFound) {
			t.Errorf("Open(%q) = %v, want ErrFileNotFound", name, err)
		}
	}
}

func TestLocalStorageDeleteIdempotent(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	name, err := store.Save(strings.NewReader("x"), "f.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(name); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(name); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
	if _, err := store.Open(name); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Open after delete = %v, want ErrFileNotFound", err)
	}
}
