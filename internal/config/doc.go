// Package config loads, normalizes, and validates mediasort configuration.
//
// Configuration comes from a TOML file (./mediasort.toml or
// ~/.config/mediasort/config.toml) layered over built-in defaults. Path
// fields are tilde-expanded and made absolute during load, so downstream
// code never deals with relative or unexpanded paths.
package config
