// Package services provides the shared error classification and context
// plumbing used across mediasort components.
//
// Errors carry sentinel markers so callers can distinguish fatal pre-run
// failures (missing source root, bad configuration, destination already
// locked) from per-file failures that a run records and skips. Context
// helpers thread run and file identity into structured logs.
package services
