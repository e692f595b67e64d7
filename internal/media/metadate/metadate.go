// Package metadate reads embedded "date taken" tags out of media files:
// EXIF for images, the movie header creation time for MP4-family videos.
//
// Every failure mode (no tag, unparsable tag, truncated container) is a
// miss, not an error the pipeline acts on; the resolver falls back to the
// next strategy.
package metadate

import (
	"path/filepath"
	"strings"
	"time"

	"mediasort/internal/media"
)

// Reader implements media.EmbeddedReader over the format-specific readers in
// this package.
type Reader struct{}

var _ media.EmbeddedReader = Reader{}

// ReadTakenTime dispatches on category and container format. The bool result
// is false whenever no usable embedded date exists.
func (Reader) ReadTakenTime(path string, category media.Category) (time.Time, bool, error) {
	switch category {
	case media.CategoryImage:
		return exifTakenTime(path)
	case media.CategoryVideo:
		if isMP4Family(path) {
			return mp4CreationTime(path)
		}
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, nil
	}
}

// isMP4Family reports whether the container uses ISO base media boxes
// (MP4/QuickTime). Other video containers carry no date we can read.
func isMP4Family(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	default:
		return false
	}
}
