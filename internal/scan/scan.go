// Package scan enumerates candidate files beneath a source root.
//
// Walk yields a lazy, finite sequence over a channel; a fresh call re-walks
// from scratch. Entries arrive in lexical path order so repeated runs over an
// unchanged tree see identical sequencing, which in turn keeps collision
// suffix assignment deterministic downstream.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"mediasort/internal/media"
	"mediasort/internal/services"
)

// Walk validates root and returns a channel of discovered files. Only
// regular files are yielded; symlinks, devices, and other non-regular
// entries are skipped silently. Unreadable subdirectories are skipped, not
// fatal. The only fatal condition is the root itself being absent or not a
// directory, reported synchronously before any walking starts.
func Walk(ctx context.Context, root string, recursive bool) (<-chan media.FileEntry, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "scan", "stat root", "source root does not exist", err)
		}
		return nil, services.Wrap(services.ErrNotFound, "scan", "stat root", "source root is not accessible", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrValidation, "scan", "stat root", "source root is not a directory", nil)
	}

	out := make(chan media.FileEntry, 16)
	w := walker{ctx: ctx, out: out, recursive: recursive}
	go func() {
		defer close(out)
		w.run(root)
	}()
	return out, nil
}

type walker struct {
	ctx       context.Context
	out       chan<- media.FileEntry
	recursive bool
}

func (w *walker) run(dir string) {
	// os.ReadDir sorts by name, so emission order is lexical by full path.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				continue
			}
			w.out <- media.FileEntry{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			}
		case entry.IsDir():
			if w.recursive {
				w.run(path)
			}
		}
	}
}
