package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when [Generator.Debounce] is zero.
const DefaultDebounce = 250 * time.Millisecond

// Watch generates the document, then regenerates it whenever the master
// record, profile or template changes, until ctx is cancelled.
// Each result is passed to onResult; failures do not stop watching.
func (g *Generator) Watch(ctx context.Context, onResult func(*Result, error)) error {
	profilePath, err := g.ProfilePath()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}

	defer func() {
		err := watcher.Close()
		if err != nil {
			slog.Error("close watcher", slog.Any("err", err))
		}
	}()

	watched := map[string]struct{}{}
	for _, path := range []string{g.Master, g.Template, profilePath} {
		if path == "" {
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("get absolute path: %w", err)
		}

		// Watch the directory so editors that replace files are handled.
		err = watcher.Add(filepath.Dir(abs))
		if err != nil {
			return fmt.Errorf("add path to watcher: %w", err)
		}

		watched[abs] = struct{}{}
	}

	slog.Debug("added file watchers", slog.Int("count", len(watched)))

	onResult(g.Run(ctx))

	debounce := g.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if _, ok := watched[evt.Name]; !ok {
				continue
			}

			// Ignore events that are not related to file content changes.
			if evt.Has(fsnotify.Chmod) {
				continue
			}

			slog.Debug("file changed", slog.String("event", evt.String()))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("watch files", slog.Any("err", err))

		case <-timer.C:
			res, err := g.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			onResult(res, err)
		}
	}
}
