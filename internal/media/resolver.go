package media

import "time"

// minPlausibleTaken rejects sentinel dates some metadata writers emit for
// "unknown" (unix epoch, DOS epoch). Nothing organized here predates
// practical digital photography.
var minPlausibleTaken = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// EmbeddedReader extracts a "date taken" tag from inside a media file.
// The bool result is false when no usable tag exists; errors are treated the
// same way by the resolver.
type EmbeddedReader interface {
	ReadTakenTime(path string, category Category) (time.Time, bool, error)
}

type strategy struct {
	source  TimestampSource
	resolve func(entry FileEntry, category Category) (time.Time, bool)
}

// Resolver picks the canonical timestamp for a file by walking an ordered
// strategy list; the first strategy that yields a plausible time wins. The
// final strategy (filesystem mtime) cannot miss, so resolution is total.
type Resolver struct {
	strategies []strategy
}

// NewResolver builds the standard strategy chain: embedded metadata, then
// filename patterns, then modification time. A nil reader skips the embedded
// step entirely.
func NewResolver(reader EmbeddedReader) *Resolver {
	r := &Resolver{}
	if reader != nil {
		r.strategies = append(r.strategies, strategy{
			source: SourceEmbeddedMetadata,
			resolve: func(entry FileEntry, category Category) (time.Time, bool) {
				if category != CategoryImage && category != CategoryVideo {
					return time.Time{}, false
				}
				taken, ok, err := reader.ReadTakenTime(entry.Path, category)
				if err != nil || !ok || !plausibleTakenTime(taken) {
					return time.Time{}, false
				}
				return taken, true
			},
		})
	}
	r.strategies = append(r.strategies,
		strategy{
			source: SourceFilename,
			resolve: func(entry FileEntry, _ Category) (time.Time, bool) {
				taken, ok := TimeFromFilename(entry.Path)
				if !ok || !plausibleTakenTime(taken) {
					return time.Time{}, false
				}
				return taken, true
			},
		},
		strategy{
			source: SourceModTime,
			resolve: func(entry FileEntry, _ Category) (time.Time, bool) {
				return entry.ModTime, true
			},
		},
	)
	return r
}

// Resolve returns the canonical timestamp for entry. Deterministic: the same
// entry and embedded bytes always produce the same result.
func (r *Resolver) Resolve(entry FileEntry, category Category) ResolvedTimestamp {
	for _, s := range r.strategies {
		if taken, ok := s.resolve(entry, category); ok {
			return ResolvedTimestamp{Time: taken, Source: s.source}
		}
	}
	// Unreachable while the mtime strategy terminates the chain.
	return ResolvedTimestamp{Time: entry.ModTime, Source: SourceModTime}
}

func plausibleTakenTime(t time.Time) bool {
	return !t.IsZero() && !t.Before(minPlausibleTaken)
}
