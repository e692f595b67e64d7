package scan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mediasort/internal/media"
	"mediasort/internal/scan"
	"mediasort/internal/services"
	"mediasort/internal/testsupport"
)

func collect(t *testing.T, root string, recursive bool) []media.FileEntry {
	t.Helper()
	ch, err := scan.Walk(context.Background(), root, recursive)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var entries []media.FileEntry
	for entry := range ch {
		entries = append(entries, entry)
	}
	return entries
}

func relPaths(t *testing.T, root string, entries []media.FileEntry) []string {
	t.Helper()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		rel, err := filepath.Rel(root, entry.Path)
		if err != nil {
			t.Fatalf("Rel: %v", err)
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths
}

func TestWalkRecursiveLexicalOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"z.txt", "a.txt", "sub/m.txt", "sub/a.txt", "b/deep/x.txt"} {
		testsupport.WriteFile(t, filepath.Join(root, name), []byte(name))
	}

	got := relPaths(t, root, collect(t, root, true))
	want := []string{"a.txt", "b/deep/x.txt", "sub/a.txt", "sub/m.txt", "z.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestWalkNonRecursiveYieldsDirectChildrenOnly(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "top.txt"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "sub", "nested.txt"), []byte("y"))

	got := relPaths(t, root, collect(t, root, false))
	if len(got) != 1 || got[0] != "top.txt" {
		t.Fatalf("expected only top.txt, got %v", got)
	}
}

func TestWalkSkipsNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "real.txt"), []byte("x"))
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := relPaths(t, root, collect(t, root, true))
	if len(got) != 1 || got[0] != "real.txt" {
		t.Fatalf("expected symlink to be skipped, got %v", got)
	}
}

func TestWalkMissingRootIsFatal(t *testing.T) {
	_, err := scan.Walk(context.Background(), filepath.Join(t.TempDir(), "absent"), true)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWalkFileRootIsFatal(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "not-a-dir")
	testsupport.WriteFile(t, file, []byte("x"))

	_, err := scan.Walk(context.Background(), file, true)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestWalkPopulatesEntryMetadata(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "sized.bin")
	testsupport.WriteFile(t, path, make([]byte, 1234))

	entries := collect(t, root, true)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Size != 1234 {
		t.Fatalf("expected size 1234, got %d", entries[0].Size)
	}
	if entries[0].ModTime.IsZero() {
		t.Fatal("expected a populated mod time")
	}
	if !filepath.IsAbs(entries[0].Path) {
		t.Fatalf("expected absolute path, got %q", entries[0].Path)
	}
}
