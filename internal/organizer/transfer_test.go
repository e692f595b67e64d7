package organizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestTransferCopyKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "out", "2020", "05", "01", "src.jpg")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := transferFile(src, dst, false); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("destination content mismatch: %q", got)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("copy must leave the source in place: %v", err)
	}
}

func TestTransferMoveRemovesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp4")
	dst := filepath.Join(dir, "out", "src.mp4")
	if err := os.WriteFile(src, []byte("video bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := transferFile(src, dst, true); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if _, err := os.Stat(src); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("move must remove the source, stat returned %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(got) != "video bytes" {
		t.Fatalf("destination content mismatch: %q", got)
	}
}

func TestTransferMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	err := transferFile(filepath.Join(dir, "absent.jpg"), filepath.Join(dir, "out", "absent.jpg"), false)
	if err == nil {
		t.Fatal("expected an error for a missing source")
	}
	if reason := classifyFailure(err); reason != ReasonIO {
		t.Fatalf("expected io failure reason, got %s", reason)
	}
}

func TestTransferLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dstDir := filepath.Join(dir, "out")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := transferFile(src, filepath.Join(dstDir, "src.jpg"), false); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	entries, err := os.ReadDir(dstDir)
	if err != nil {
		t.Fatalf("read destination dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "src.jpg" {
			t.Fatalf("unexpected leftover entry %s", entry.Name())
		}
	}
}

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureReason
	}{
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, ReasonPermission},
		{"disk full", &fs.PathError{Op: "write", Path: "x", Err: syscall.ENOSPC}, ReasonDiskFull},
		{"quota", &fs.PathError{Op: "write", Path: "x", Err: syscall.EDQUOT}, ReasonDiskFull},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, ReasonIO},
		{"link error", &os.LinkError{Op: "rename", Old: "a", New: "b", Err: fs.ErrNotExist}, ReasonIO},
		{"opaque", errors.New("boom"), ReasonUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyFailure(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
