// Package media holds the domain model of the organizing pipeline: file
// entries, categories, resolved timestamps, and the classification and
// timestamp-resolution logic that operates on them.
//
// The package is deliberately free of filesystem side effects beyond what
// its injected capabilities (content probing, embedded metadata reading)
// perform; subpackages probe and metadate supply the production
// implementations of those capabilities.
package media
