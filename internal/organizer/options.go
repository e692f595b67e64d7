package organizer

import (
	"log/slog"

	"mediasort/internal/logging"
)

// Options is the configuration bundle for one run. It is constructed once,
// passed by value, and never mutated by the pipeline.
type Options struct {
	// WorkingDir is the destination root. Required.
	WorkingDir string

	// Folder names for the three categories inside WorkingDir. Empty fields
	// fall back to Images/Videos/Unknown.
	ImagesDirName  string
	VideosDirName  string
	UnknownDirName string

	// MoveFiles relocates sources instead of copying them.
	MoveFiles bool
	// FastParse classifies by extension only, skipping content probing.
	FastParse bool
	// Recursive descends into subdirectories of the source root.
	Recursive bool
	// ReportProgress emits an incremental notification per processed file.
	// The final tally is delivered either way.
	ReportProgress bool
	// DryRun classifies and resolves destinations without touching the
	// destination filesystem; the result carries the planned moves.
	DryRun bool

	// Observer receives progress notifications. Nil selects the default:
	// plain status lines on stdout when ReportProgress is set, silence
	// otherwise.
	Observer ProgressObserver
	// Logger receives structured run logs. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options a bare run uses: copy (not move),
// accurate classification, recursive walk, progress on.
func DefaultOptions(workingDir string) Options {
	return Options{
		WorkingDir:     workingDir,
		Recursive:      true,
		ReportProgress: true,
	}
}

func (o Options) normalized() Options {
	if o.ImagesDirName == "" {
		o.ImagesDirName = "Images"
	}
	if o.VideosDirName == "" {
		o.VideosDirName = "Videos"
	}
	if o.UnknownDirName == "" {
		o.UnknownDirName = "Unknown"
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	return o
}
