package media

import "time"

// FileEntry describes one regular file discovered by the walker. Entries are
// immutable; the organizer owns one for the duration of that file's
// processing.
type FileEntry struct {
	// Path is the absolute source path.
	Path string
	// Size is the file size in bytes at discovery time.
	Size int64
	// ModTime is the filesystem modification time at discovery time.
	ModTime time.Time
}
