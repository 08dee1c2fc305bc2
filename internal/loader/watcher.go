package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// WatchDir reloads menus whenever one of the loader's documents changes in
// dir, until ctx is cancelled. Bursts of events (the scraper rewrites all
// three files) collapse into a single load after debounce.
func (l *Loader) WatchDir(ctx context.Context, dir string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("menu watcher init failed: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	watched := make(map[string]bool, len(l.documents))
	for _, name := range l.documents {
		watched[filepath.Clean(name)] = true
	}

	l.logger.Info("menu watcher started", zap.String("dir", dir))

	// stopped timer; armed by the first relevant event
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("menu watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			rel, err := filepath.Rel(dir, event.Name)
			if err != nil || !watched[rel] {
				continue
			}
			l.logger.Debug("menu document changed", zap.String("document", rel), zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("menu watcher error", zap.Error(err))

		case <-timer.C:
			_, _ = l.Load(ctx)
		}
	}
}
