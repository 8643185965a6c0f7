// Package watch re-runs the analysis whenever a data file changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/san-kum/tensile/internal/ingest"
	"github.com/san-kum/tensile/internal/tensile"
)

const DefaultDebounce = 200 * time.Millisecond

// Options configure how each change is analyzed.
type Options struct {
	Specimen tensile.Specimen
	Units    tensile.Units
	Resolver ingest.Resolver
	// Debounce coalesces the burst of events a single save produces.
	Debounce time.Duration
	Logger   *slog.Logger
}

// Handler receives one outcome per change. ds is nil when the file could
// not be read; res is nil whenever err is set.
type Handler func(ds *ingest.Dataset, res *tensile.Result, err error)

// Analyze loads path and runs the pipeline once.
func Analyze(path string, opts Options) (*ingest.Dataset, *tensile.Result, error) {
	ds, err := ingest.Load(path, opts.Resolver)
	if err != nil {
		return nil, nil, err
	}
	res, err := tensile.Analyze(tensile.Input{
		Displacement: ds.Series.Displacement,
		Load:         ds.Series.Load,
		Specimen:     opts.Specimen,
		Units:        opts.Units,
	})
	return ds, res, err
}

// Watch analyzes path once, then again after every write, until ctx is
// cancelled. Failed runs are reported to fn and the watcher keeps going.
//
// The parent directory is watched rather than the file so that editors
// which save by rename are still seen.
func Watch(ctx context.Context, path string, opts Options, fn Handler) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	log.Info("watch: watching for changes", "path", abs)

	run := func() {
		ds, res, err := Analyze(abs, opts)
		if err != nil {
			log.Warn("watch: analysis failed", "path", abs, "err", err)
		} else {
			log.Info("watch: analyzed", "path", abs, "samples", res.Len())
		}
		fn(ds, res, err)
	}
	run()

	timer := time.NewTimer(opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(opts.Debounce)

		case <-timer.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch: watcher error", "err", err)
		}
	}
}
