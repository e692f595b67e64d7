package metadate

import (
	"os"
	"time"

	gomp4 "github.com/abema/go-mp4"
)

// The mvhd creation time counts seconds since the QuickTime epoch.
var mp4Epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// mp4CreationTime reads the movie header creation time from an ISO base
// media file. A zero creation time is the container's own "unknown" sentinel
// and reports a miss.
func mp4CreationTime(path string) (time.Time, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false, err
	}
	defer f.Close()

	boxes, err := gomp4.ExtractBoxWithPayload(f, nil, gomp4.BoxPath{gomp4.BoxTypeMoov(), gomp4.BoxTypeMvhd()})
	if err != nil || len(boxes) == 0 {
		return time.Time{}, false, nil
	}

	mvhd, ok := boxes[0].Payload.(*gomp4.Mvhd)
	if !ok {
		return time.Time{}, false, nil
	}

	var seconds uint64
	if mvhd.GetVersion() == 0 {
		seconds = uint64(mvhd.CreationTimeV0)
	} else {
		seconds = mvhd.CreationTimeV1
	}
	if seconds == 0 {
		return time.Time{}, false, nil
	}
	return mp4Epoch.Add(time.Duration(seconds) * time.Second), true, nil
}
