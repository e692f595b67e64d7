package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"mediasort/internal/organizer"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// barObserver renders an interactive progress bar instead of one status line
// per file. The bar is created on the first update, once the total is known.
type barObserver struct {
	bar *progressbar.ProgressBar
}

func newBarObserver() *barObserver { return &barObserver{} }

func (o *barObserver) OnFileProcessed(update organizer.Progress) {
	if o.bar == nil {
		o.bar = progressbar.NewOptions(update.Total,
			progressbar.OptionSetDescription("organizing"),
			progressbar.OptionSetWriter(os.Stdout),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = o.bar.Add(1)
}

func (o *barObserver) OnRunCompleted(organizer.Tally) {
	if o.bar != nil {
		_ = o.bar.Finish()
	}
}
