package main

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// debounce collapses the burst of events an editor produces on save.
const debounce = 100 * time.Millisecond

// watch renders once, then again after every write to the input file, until
// ctx is done. The directory is watched rather than the file so editors that
// save by rename keep triggering renders.
func watch(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(opts.input)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	out, errOut := termenv.NewOutput(stdout), termenv.NewOutput(stderr)
	rerender := func() {
		if err := convert(opts, out); err != nil {
			report(errOut, err)
		}
	}
	rerender()
	logger.Info("watching for changes", "input", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.After(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			rerender()
		}
	}
}
