package media

import (
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {},
	".tif": {}, ".tiff": {}, ".webp": {}, ".heic": {}, ".heif": {},
	".dng": {}, ".cr2": {}, ".cr3": {}, ".nef": {}, ".arw": {}, ".orf": {},
	".raf": {}, ".rw2": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".m4v": {}, ".mov": {}, ".mkv": {}, ".avi": {},
	".wmv": {}, ".mpg": {}, ".mpeg": {}, ".mts": {}, ".m2ts": {},
	".3gp": {}, ".webm": {}, ".flv": {},
}

// CategoryForExtension classifies a path by its extension alone. Anything not
// recognized as an image or video is unknown; it never rejects a file.
func CategoryForExtension(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; ok {
		return CategoryImage
	}
	if _, ok := videoExtensions[ext]; ok {
		return CategoryVideo
	}
	return CategoryUnknown
}
