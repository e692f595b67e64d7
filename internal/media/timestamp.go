package media

import "time"

// TimestampSource records which strategy produced a resolved timestamp.
type TimestampSource int

const (
	// SourceEmbeddedMetadata means the date came from tags inside the file
	// container (EXIF, MP4 movie header).
	SourceEmbeddedMetadata TimestampSource = iota
	// SourceFilename means the date was parsed out of the file name.
	SourceFilename
	// SourceModTime means the filesystem modification time was used.
	SourceModTime
)

func (s TimestampSource) String() string {
	switch s {
	case SourceEmbeddedMetadata:
		return "embedded"
	case SourceFilename:
		return "filename"
	default:
		return "mtime"
	}
}

// ResolvedTimestamp is the canonical "date taken" chosen for a file, plus the
// provenance of that choice. Resolution never fails: the modification time is
// the terminal fallback and is always available for an existing file.
type ResolvedTimestamp struct {
	Time   time.Time
	Source TimestampSource
}
