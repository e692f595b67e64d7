package metadate

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTakenTime reads DateTimeOriginal (falling back to DateTime) from an
// image's EXIF block. Any decode failure is a miss.
func exifTakenTime(path string) (time.Time, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false, nil
	}

	taken, err := x.DateTime()
	if err != nil {
		return time.Time{}, false, nil
	}
	return taken, true, nil
}
