package organizer

import (
	"fmt"
	"io"
	"os"

	"mediasort/internal/media"
)

// Progress is the incremental notification emitted after each processed
// file. Status and Percent are computed fresh per call, never cached.
type Progress struct {
	Index int
	Total int
	// Status is the human-readable line, e.g. "Processing file 3 of 12".
	Status string
	// Percent is Index/Total formatted with one decimal, e.g. "25.0%".
	Percent string

	Path        string
	Category    media.Category
	Destination string
	Failed      bool
}

// Tally is the final per-category count across a whole run. Every classified
// file is counted exactly once, transfer success or not.
type Tally struct {
	Images  int
	Videos  int
	Unknown int
}

// Total returns the number of files classified during the run.
func (t Tally) Total() int { return t.Images + t.Videos + t.Unknown }

// ProgressObserver receives pipeline notifications. Implementations must not
// block for long; the pipeline is strictly sequential and the next file does
// not start until the notification returns.
type ProgressObserver interface {
	OnFileProcessed(update Progress)
	OnRunCompleted(tally Tally)
}

// accountant tracks processed counts and running per-category totals for one
// run. Not safe for concurrent use; the sequential pipeline is its only
// writer.
type accountant struct {
	total     int
	processed int
	tally     Tally
}

func (a *accountant) record(category media.Category) {
	a.processed++
	switch category {
	case media.CategoryImage:
		a.tally.Images++
	case media.CategoryVideo:
		a.tally.Videos++
	default:
		a.tally.Unknown++
	}
}

func (a *accountant) progress(path string, category media.Category, destination string, failed bool) Progress {
	percent := 0.0
	if a.total > 0 {
		percent = float64(a.processed) / float64(a.total) * 100
	}
	return Progress{
		Index:       a.processed,
		Total:       a.total,
		Status:      fmt.Sprintf("Processing file %d of %d", a.processed, a.total),
		Percent:     fmt.Sprintf("%.1f%%", percent),
		Path:        path,
		Category:    category,
		Destination: destination,
		Failed:      failed,
	}
}

// consoleObserver is the default observer: one status line per file on
// stdout, nothing at completion (the caller renders its own summary).
type consoleObserver struct {
	w io.Writer
}

func newConsoleObserver() consoleObserver { return consoleObserver{w: os.Stdout} }

func (o consoleObserver) OnFileProcessed(update Progress) {
	fmt.Fprintln(o.w, update.Status)
}

func (o consoleObserver) OnRunCompleted(Tally) {}

type nopObserver struct{}

func (nopObserver) OnFileProcessed(Progress) {}

func (nopObserver) OnRunCompleted(Tally) {}

// quietObserver forwards the final tally but swallows incremental updates,
// for callers that supplied an observer with progress reporting disabled.
type quietObserver struct {
	inner ProgressObserver
}

func (o quietObserver) OnFileProcessed(Progress) {}

func (o quietObserver) OnRunCompleted(tally Tally) { o.inner.OnRunCompleted(tally) }

func selectObserver(opts Options) ProgressObserver {
	if opts.Observer == nil {
		if opts.ReportProgress {
			return newConsoleObserver()
		}
		return nopObserver{}
	}
	if !opts.ReportProgress {
		return quietObserver{inner: opts.Observer}
	}
	return opts.Observer
}
