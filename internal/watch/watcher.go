package watch

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"sealgen/internal/errors"
	"sealgen/internal/logger"
)

// DefaultDebounce is how long the watcher waits for more changes.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc handles one debounced batch of changed files.
type ChangeFunc func(ctx context.Context, files []string)

// Watcher reports debounced changes to Go source files in a set of
// directories. Generated files are ignored so regeneration does not loop.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	suffix   string
}

// New watches dirs. Files ending in generatedSuffix are ignored.
func New(dirs []string, generatedSuffix string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, errors.Wrapf(err, "watching %s", dir)
		}
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{watcher: fw, debounce: debounce, suffix: generatedSuffix}, nil
}

// Run delivers batches to fn until ctx is done or the watcher is closed.
// fn runs on the watching goroutine, so changes made while it runs are
// batched into the next call.
func (w *Watcher) Run(ctx context.Context, fn ChangeFunc) error {
	pending := make(map[string]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			logger.Logger.Debugw("source changed", "file", event.Name, "op", event.Op.String())

			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logger.Logger.Warnw("watcher error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}

			sort.Strings(files)
			clear(pending)

			logger.Logger.Infow("regenerating", "changed", len(files))
			fn(ctx, files)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	if filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
		return false
	}

	if w.suffix != "" && strings.HasSuffix(name, w.suffix) {
		return false
	}

	return !strings.HasSuffix(name, ".unformatted.go")
}
