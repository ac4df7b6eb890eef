// Package watch keeps dumped assets in sync with their sources.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vinceanalytics/assetdump/internal/dump"
)

const DefaultPeriod = time.Second

// Snapshot is the set of assets known at the start of a pass.
type Snapshot struct {
	Manager   dump.Manager
	Names     []string
	Variables map[string][]string
	// Roots are the directories the assets are read from.
	Roots     []string
}

// Source provides the assets to watch. Load is called before every pass so
// configuration changes are picked up.
type Source interface {
	Load() (*Snapshot, error)
}

type Reporter interface {
	Error(err error)
}

type Options struct {
	Dumper *dump.Dumper
	Source Source
	Out    Reporter
	// Roots are directories whose changes trigger an early pass.
	Roots  []string
	Period time.Duration
}

// Watcher holds the state of one watch session.
type Watcher struct {
	o        Options
	visits   *dump.Visits
	last     string
	// roots of the latest snapshot and the directories already watched.
	roots    []string
	watching map[string]bool
}

func New(o Options) *Watcher {
	if o.Period <= 0 {
		o.Period = DefaultPeriod
	}
	return &Watcher{o: o, visits: dump.NewVisits(), watching: map[string]bool{}}
}

// Run performs passes until ctx is done. Errors are reported and the loop
// carries on; an error identical to the previous one is not reported again
// unless a successful pass came in between.
func (w *Watcher) Run(ctx context.Context) error {
	events := make(chan struct{}, 1)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	w.watch(fw, w.o.Roots)
	go forward(fw, events)

	tick := time.NewTicker(w.o.Period)
	defer tick.Stop()
	for {
		w.report(w.Pass())
		w.watch(fw, w.roots)
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		case <-events:
		}
	}
}

// Pass reloads the source and dumps every asset that changed since the
// previous pass.
func (w *Watcher) Pass() error {
	s, err := w.o.Source.Load()
	if err != nil {
		return err
	}
	w.o.Dumper.Manager = s.Manager
	w.o.Dumper.Variables = s.Variables
	w.roots = s.Roots
	for _, name := range s.Names {
		changed, err := w.o.Dumper.CheckAsset(name, w.visits)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		slog.Info("asset changed", "name", name)
		if err := w.o.Dumper.DumpAsset(name, w.visits); err != nil {
			return err
		}
	}
	return nil
}

// watch adds roots not seen before, so a reloaded configuration pointing
// read_from elsewhere is watched too.
func (w *Watcher) watch(fw *fsnotify.Watcher, roots []string) {
	for _, root := range roots {
		if w.watching[root] {
			continue
		}
		w.watching[root] = true
		add(fw, root)
	}
}

func (w *Watcher) report(err error) {
	if err == nil {
		w.last = ""
		return
	}
	if msg := err.Error(); msg != w.last {
		w.last = msg
		w.o.Out.Error(err)
	}
}

func add(fw *fsnotify.Watcher, root string) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping watch path", "path", path, "err", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			slog.Warn("failed watching directory", "path", path, "err", err)
		}
		return nil
	})
}

func forward(fw *fsnotify.Watcher, events chan<- struct{}) {
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			slog.Debug("source event", "event", event.String())
			if event.Has(fsnotify.Create) {
				add(fw, event.Name)
			}
			select {
			case events <- struct{}{}:
			default:
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("watching sources", "err", err)
		}
	}
}
