package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkingDir) == "" {
		c.Paths.WorkingDir = defaultWorkingDir
	}
	if c.Paths.WorkingDir, err = ExpandPath(c.Paths.WorkingDir); err != nil {
		return fmt.Errorf("paths.working_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Library.ImagesDir = defaultIfEmpty(c.Library.ImagesDir, defaultImagesDir)
	c.Library.VideosDir = defaultIfEmpty(c.Library.VideosDir, defaultVideosDir)
	c.Library.UnknownDir = defaultIfEmpty(c.Library.UnknownDir, defaultUnknownDir)

	c.Logging.Format = strings.ToLower(defaultIfEmpty(c.Logging.Format, defaultLogFormat))
	c.Logging.Level = strings.ToLower(defaultIfEmpty(c.Logging.Level, defaultLogLevel))
	return nil
}

func defaultIfEmpty(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// ExpandPath resolves a leading tilde and converts the result to an absolute
// path. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
