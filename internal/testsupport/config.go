// Package testsupport provides shared helpers for mediasort tests: configs
// seeded with per-test temp directories and media fixture writers.
package testsupport

import (
	"path/filepath"
	"testing"

	"mediasort/internal/config"
	"mediasort/internal/organizer"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.WorkingDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

// NewOptions produces run options rooted in a fresh temp working directory.
func NewOptions(t testing.TB) organizer.Options {
	t.Helper()
	return organizer.DefaultOptions(filepath.Join(t.TempDir(), "library"))
}
