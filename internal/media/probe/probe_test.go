package probe_test

import (
	"path/filepath"
	"testing"
	"time"

	"mediasort/internal/media"
	"mediasort/internal/media/probe"
	"mediasort/internal/testsupport"
)

func TestProbeDetectsImageContent(t *testing.T) {
	// Extension deliberately wrong; only the magic bytes say image.
	path := filepath.Join(t.TempDir(), "misnamed.dat")
	testsupport.WriteJPEGWithEXIF(t, path, time.Date(2020, 5, 1, 10, 30, 0, 0, time.UTC))

	got, err := probe.Detector{}.Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got != media.CategoryImage {
		t.Fatalf("expected image, got %s", got)
	}
}

func TestProbeDetectsVideoContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "misnamed.dat")
	testsupport.WriteMP4WithCreationTime(t, path, time.Date(2021, 7, 15, 8, 0, 0, 0, time.UTC))

	got, err := probe.Detector{}.Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got != media.CategoryVideo {
		t.Fatalf("expected video, got %s", got)
	}
}

func TestProbeUnrecognizedContentIsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	testsupport.WriteFile(t, path, []byte("plain text, nothing else"))

	got, err := probe.Detector{}.Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got != media.CategoryUnknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestProbeMissingFileReturnsError(t *testing.T) {
	if _, err := (probe.Detector{}).Probe(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
