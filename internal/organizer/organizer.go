// Package organizer composes the classification, timestamp-resolution, and
// relocation pipeline into the end-to-end run flow.
//
// A run is a single sequential pass: walk the source root, then for each file
// classify, resolve a timestamp, build a destination, transfer, and notify
// the progress observer. Per-file failures are recorded and skipped; only
// failure to enumerate the source root or to lock the destination aborts a
// run.
package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mediasort/internal/logging"
	"mediasort/internal/media"
	"mediasort/internal/media/metadate"
	"mediasort/internal/media/probe"
	"mediasort/internal/scan"
	"mediasort/internal/services"
)

const lockFileName = ".mediasort.lock"

// Organizer runs the relocation pipeline with a fixed set of options.
type Organizer struct {
	opts       Options
	classifier *media.Classifier
	resolver   *media.Resolver
	observer   ProgressObserver
	logger     *slog.Logger
}

// New constructs an organizer with the production capabilities: mimetype
// content probing and EXIF/MP4 embedded date reading.
func New(opts Options) *Organizer {
	return NewWithDependencies(opts, probe.Detector{}, metadate.Reader{})
}

// NewWithDependencies allows injecting the probing and metadata capabilities
// (used in tests).
func NewWithDependencies(opts Options, prober media.ContentProber, reader media.EmbeddedReader) *Organizer {
	opts = opts.normalized()
	return &Organizer{
		opts:       opts,
		classifier: media.NewClassifier(prober),
		resolver:   media.NewResolver(reader),
		observer:   selectObserver(opts),
		logger:     opts.Logger.With(logging.String(logging.FieldComponent, "organizer")),
	}
}

// Run organizes every file under sourceRoot with the given options. It is
// the package's single entry operation.
func Run(ctx context.Context, sourceRoot string, opts Options) (*Result, error) {
	return New(opts).Run(ctx, sourceRoot)
}

// Run walks sourceRoot and relocates each discovered file into the working
// directory tree. The returned result is valid whenever the error is nil,
// including runs where individual files failed.
func (o *Organizer) Run(ctx context.Context, sourceRoot string) (*Result, error) {
	started := time.Now()

	if o.opts.WorkingDir == "" {
		return nil, services.Wrap(services.ErrConfiguration, "organize", "validate options", "working directory must be set", nil)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, o.logger)

	if !o.opts.DryRun {
		if err := os.MkdirAll(o.opts.WorkingDir, 0o755); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "organize", "ensure working directory", "failed to create working directory", err)
		}
		lock := flock.New(filepath.Join(o.opts.WorkingDir, lockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrTransient, "organize", "lock working directory", "failed to acquire destination lock", err)
		}
		if !locked {
			return nil, services.Wrap(services.ErrLocked, "organize", "lock working directory", "another run owns this working directory", nil)
		}
		defer func() { _ = lock.Unlock() }()
	}

	// The walker is lazy but the progress contract needs the total up
	// front, so the sequence is drained before processing starts.
	files, err := scan.Walk(ctx, sourceRoot, o.opts.Recursive)
	if err != nil {
		return nil, err
	}
	entries := make([]media.FileEntry, 0, 128)
	for entry := range files {
		entries = append(entries, entry)
	}

	logger.Info("run started",
		logging.String("source_root", sourceRoot),
		logging.String("working_dir", o.opts.WorkingDir),
		logging.Int("files", len(entries)),
		logging.Bool("move", o.opts.MoveFiles),
		logging.Bool("fast_parse", o.opts.FastParse),
		logging.Bool("dry_run", o.opts.DryRun),
	)

	result := &Result{RunID: runID}
	acct := &accountant{total: len(entries)}
	dests := newDestinationResolver(o.opts)

	for _, entry := range entries {
		fileCtx := services.WithSourceFile(ctx, entry.Path)
		fileLogger := logging.WithContext(fileCtx, o.logger)

		category := o.classifier.Classify(entry.Path, o.opts.FastParse)
		taken := o.resolver.Resolve(entry, category)
		destination := dests.Resolve(category, taken.Time, filepath.Base(entry.Path))

		failed := false
		if o.opts.DryRun {
			result.Planned = append(result.Planned, PlannedMove{
				Source:      entry.Path,
				Destination: destination,
				Category:    category,
				Taken:       taken,
			})
		} else if err := transferFile(entry.Path, destination, o.opts.MoveFiles); err != nil {
			failed = true
			reason := classifyFailure(err)
			result.Failures = append(result.Failures, Failure{Path: entry.Path, Reason: reason, Err: err})
			fileLogger.Warn("transfer failed; source left in place",
				logging.Error(err),
				logging.String("reason", string(reason)),
				logging.String("destination", destination),
			)
		} else {
			result.BytesTransferred += entry.Size
		}

		acct.record(category)
		o.observer.OnFileProcessed(acct.progress(entry.Path, category, destination, failed))
		fileLogger.Debug("file processed",
			logging.String(logging.FieldCategory, category.String()),
			logging.String("taken", taken.Time.Format(time.RFC3339)),
			logging.String("taken_source", taken.Source.String()),
			logging.String("destination", destination),
			logging.Bool("failed", failed),
		)
	}

	result.Tally = acct.tally
	result.Elapsed = time.Since(started)
	o.observer.OnRunCompleted(result.Tally)

	logger.Info("run completed",
		logging.Int("images", result.Tally.Images),
		logging.Int("videos", result.Tally.Videos),
		logging.Int("unknown", result.Tally.Unknown),
		logging.Int("failures", len(result.Failures)),
		logging.String("transferred", humanize.Bytes(uint64(result.BytesTransferred))),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
