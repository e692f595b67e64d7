package media_test

import (
	"errors"
	"testing"
	"time"

	"mediasort/internal/media"
)

type stubReader struct {
	taken time.Time
	ok    bool
	err   error
}

func (r stubReader) ReadTakenTime(string, media.Category) (time.Time, bool, error) {
	return r.taken, r.ok, r.err
}

func entryWithModTime(mtime time.Time) media.FileEntry {
	return media.FileEntry{Path: "/src/file.bin", Size: 10, ModTime: mtime}
}

func TestResolveEmbeddedDateWins(t *testing.T) {
	taken := time.Date(2020, time.May, 1, 10, 30, 0, 0, time.Local)
	resolver := media.NewResolver(stubReader{taken: taken, ok: true})

	got := resolver.Resolve(entryWithModTime(time.Now()), media.CategoryImage)
	if got.Source != media.SourceEmbeddedMetadata {
		t.Fatalf("expected embedded provenance, got %s", got.Source)
	}
	if !got.Time.Equal(taken) {
		t.Fatalf("expected %v, got %v", taken, got.Time)
	}
}

func TestResolveUnknownCategorySkipsEmbedded(t *testing.T) {
	mtime := time.Date(2021, time.July, 15, 9, 0, 0, 0, time.Local)
	resolver := media.NewResolver(stubReader{taken: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ok: true})

	got := resolver.Resolve(entryWithModTime(mtime), media.CategoryUnknown)
	if got.Source != media.SourceModTime {
		t.Fatalf("expected mtime provenance for unknown category, got %s", got.Source)
	}
	if !got.Time.Equal(mtime) {
		t.Fatalf("expected %v, got %v", mtime, got.Time)
	}
}

func TestResolveRejectsSentinelDates(t *testing.T) {
	mtime := time.Date(2021, time.July, 15, 9, 0, 0, 0, time.Local)
	cases := map[string]time.Time{
		"zero":       {},
		"unix epoch": time.Unix(0, 0),
		"pre-1980":   time.Date(1979, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for name, sentinel := range cases {
		resolver := media.NewResolver(stubReader{taken: sentinel, ok: true})
		got := resolver.Resolve(entryWithModTime(mtime), media.CategoryImage)
		if got.Source != media.SourceModTime {
			t.Fatalf("%s: sentinel date must be a miss, got provenance %s", name, got.Source)
		}
	}
}

func TestResolveReaderErrorFallsBack(t *testing.T) {
	mtime := time.Date(2022, time.March, 3, 12, 0, 0, 0, time.Local)
	resolver := media.NewResolver(stubReader{err: errors.New("corrupt container")})

	got := resolver.Resolve(entryWithModTime(mtime), media.CategoryVideo)
	if got.Source != media.SourceModTime {
		t.Fatalf("expected mtime fallback on reader error, got %s", got.Source)
	}
}

func TestResolveFilenameBeatsModTime(t *testing.T) {
	mtime := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	resolver := media.NewResolver(stubReader{})

	entry := media.FileEntry{Path: "/src/IMG_20200501_103000.jpg", ModTime: mtime}
	got := resolver.Resolve(entry, media.CategoryImage)
	if got.Source != media.SourceFilename {
		t.Fatalf("expected filename provenance, got %s", got.Source)
	}
	want := time.Date(2020, time.May, 1, 10, 30, 0, 0, time.Local)
	if !got.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.Time)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	resolver := media.NewResolver(stubReader{})
	entry := entryWithModTime(time.Date(2021, time.July, 15, 9, 0, 0, 0, time.Local))

	first := resolver.Resolve(entry, media.CategoryVideo)
	for i := 0; i < 5; i++ {
		if got := resolver.Resolve(entry, media.CategoryVideo); got != first {
			t.Fatalf("resolution not deterministic: %v vs %v", got, first)
		}
	}
}
