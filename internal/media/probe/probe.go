// Package probe implements content-based category detection by sniffing
// magic bytes with the mimetype library.
package probe

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"mediasort/internal/media"
)

// Detector probes file content for its MIME type. It reads only the header
// bytes the library needs, never the whole file.
type Detector struct{}

var _ media.ContentProber = Detector{}

// Probe returns the category the file content indicates. Unrecognized
// content is CategoryUnknown with a nil error; the caller decides whether to
// fall back to extension lookup.
func (Detector) Probe(path string) (media.Category, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return media.CategoryUnknown, err
	}
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return media.CategoryImage, nil
	case strings.HasPrefix(mtype.String(), "video/"):
		return media.CategoryVideo, nil
	default:
		return media.CategoryUnknown, nil
	}
}
