package organizer

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

// FailureReason classifies why a single transfer failed.
type FailureReason string

const (
	ReasonPermission FailureReason = "permission"
	ReasonDiskFull   FailureReason = "disk-full"
	ReasonIO         FailureReason = "io"
	ReasonUnknown    FailureReason = "unknown"
)

func classifyFailure(err error) FailureReason {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return ReasonPermission
	case errors.Is(err, syscall.ENOSPC), errors.Is(err, syscall.EDQUOT):
		return ReasonDiskFull
	}
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) {
		return ReasonIO
	}
	return ReasonUnknown
}

// transferFile relocates or copies src to dst, creating intermediate
// directories. A move renames in place when source and destination share a
// volume and falls back to copy-then-delete across volumes. Copies land
// under a temporary name and are renamed into place only after the content
// verifies, so a partially written file is never visible at its final name.
// On any failure the source is left untouched.
func transferFile(src, dst string, move bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	if move {
		err := os.Rename(src, dst)
		if err == nil {
			return nil
		}
		var linkErr *os.LinkError
		if !(errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)) {
			return err
		}
		if err := copyFileAtomic(src, dst); err != nil {
			return err
		}
		return os.Remove(src)
	}

	return copyFileAtomic(src, dst)
}

// copyFileAtomic streams src into a temporary file next to dst, verifies
// size and content hash, then renames over the final name. The temporary
// file is removed on every failure path.
func copyFileAtomic(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	tmp := filepath.Join(dir, tempName(filepath.Base(dst)))
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
		_ = os.Remove(tmp)
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(out, dstHasher), io.TeeReader(in, srcHasher))
	if err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcInfo.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	if err := os.Rename(tmp, dst); err != nil {
		return err
	}
	return nil
}

// tempName builds a dotted sibling name so in-flight copies stay out of
// library views and cannot collide across runs.
func tempName(base string) string {
	return "." + base + ".tmp-" + uuid.NewString()[:8]
}
