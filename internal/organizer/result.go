package organizer

import (
	"time"

	"mediasort/internal/media"
)

// Failure records one file the run could not transfer. Failed files stay at
// their source path untouched.
type Failure struct {
	Path   string
	Reason FailureReason
	Err    error
}

// PlannedMove is one entry of a dry-run preview.
type PlannedMove struct {
	Source      string
	Destination string
	Category    media.Category
	Taken       media.ResolvedTimestamp
}

// Result summarizes a completed run.
type Result struct {
	RunID    string
	Tally    Tally
	Failures []Failure
	// Planned holds the preview when the run was a dry run; nil otherwise.
	Planned          []PlannedMove
	BytesTransferred int64
	Elapsed          time.Duration
}
