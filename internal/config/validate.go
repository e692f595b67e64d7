package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.WorkingDir) == "" {
		return errors.New("paths.working_dir must be set")
	}
	return nil
}

func (c *Config) validateLibrary() error {
	names := map[string]string{
		"library.images_dir":  c.Library.ImagesDir,
		"library.videos_dir":  c.Library.VideosDir,
		"library.unknown_dir": c.Library.UnknownDir,
	}
	seen := make(map[string]string, len(names))
	for key, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s must be set", key)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s must be a plain folder name, got %q", key, name)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s must differ, both are %q", prev, key, name)
		}
		seen[name] = key
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
