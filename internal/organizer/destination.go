package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediasort/internal/media"
)

// destinationResolver derives the target path for a file and arbitrates name
// collisions. It keeps an in-run claimed set so two sources racing for the
// same name within one run cannot both win the filesystem existence check.
type destinationResolver struct {
	workingDir string
	names      map[media.Category]string
	claimed    map[string]struct{}
}

func newDestinationResolver(opts Options) *destinationResolver {
	return &destinationResolver{
		workingDir: opts.WorkingDir,
		names: map[media.Category]string{
			media.CategoryImage:   opts.ImagesDirName,
			media.CategoryVideo:   opts.VideosDirName,
			media.CategoryUnknown: opts.UnknownDirName,
		},
		claimed: make(map[string]struct{}),
	}
}

// Resolve returns the destination path for a file: the category folder, a
// year/month/day tree from the timestamp's local calendar date, and the
// original name with a numeric suffix appended before the extension if the
// name is already taken. Given a fixed processing order the result is
// deterministic.
func (d *destinationResolver) Resolve(category media.Category, taken time.Time, originalName string) string {
	local := taken.In(time.Local)
	dir := filepath.Join(
		d.workingDir,
		d.names[category],
		fmt.Sprintf("%04d", local.Year()),
		fmt.Sprintf("%02d", int(local.Month())),
		fmt.Sprintf("%02d", local.Day()),
	)

	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(originalName, ext)

	candidate := filepath.Join(dir, originalName)
	for n := 1; d.taken(candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, n, ext))
	}
	d.claimed[candidate] = struct{}{}
	return candidate
}

func (d *destinationResolver) taken(path string) bool {
	if _, ok := d.claimed[path]; ok {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}
