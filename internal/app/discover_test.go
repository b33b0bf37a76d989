package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/seiskit/sgynorm/internal/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b", "y.sgy"))
	touch(t, filepath.Join(root, "a", "x.sgy"))
	touch(t, filepath.Join(root, "a", "deep", "z.SGY"))
	touch(t, filepath.Join(root, "a", "notes.txt"))
	touch(t, filepath.Join(root, "top.sgy"))

	got, err := Discover(root, ".sgy")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := domain.FileSet{
		filepath.Join("a", "deep", "z.SGY"),
		filepath.Join("a", "x.sgy"),
		filepath.Join("b", "y.sgy"),
		"top.sgy",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "readme.md"))

	got, err := Discover(root, ".sgy")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), ".sgy")
	if !errors.Is(err, domain.ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}

func TestDiscoverRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.sgy")
	touch(t, file)

	_, err := Discover(file, ".sgy")
	if !errors.Is(err, domain.ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
}
