package media

import (
	"path/filepath"
	"regexp"
	"time"
)

// Camera and phone firmwares encode the capture time in the file name far
// more often than they write container tags for it, so the resolver tries
// these shapes between embedded metadata and mtime.
var filenamePatterns = []struct {
	regex  *regexp.Regexp
	layout string
}{
	// IMG_20200501_103000.jpg, VID_20200501_103000.mp4, PXL_20200501_...
	{regexp.MustCompile(`(\d{8}_\d{6})`), "20060102_150405"},
	// DJI_0042_2020-05-01_10-30-00.jpg
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2})`), "2006-01-02_15-04-05"},
	// 2020-05-01 10.30.00.jpg
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}\.\d{2}\.\d{2})`), "2006-01-02 15.04.05"},
	// 20200501-103000.jpg
	{regexp.MustCompile(`(\d{8}-\d{6})`), "20060102-150405"},
}

// TimeFromFilename attempts to parse a capture time out of the base name of
// path. Returns false when no pattern matches or the match does not parse as
// a real calendar time.
func TimeFromFilename(path string) (time.Time, bool) {
	name := filepath.Base(path)
	for _, p := range filenamePatterns {
		matches := p.regex.FindStringSubmatch(name)
		if len(matches) < 2 {
			continue
		}
		t, err := time.ParseInLocation(p.layout, matches[1], time.Local)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}
