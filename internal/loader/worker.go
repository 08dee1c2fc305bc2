package loader

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunRefresher reloads menus every interval until ctx is cancelled. Failed
// loads are logged and the previous snapshot keeps serving.
func (l *Loader) RunRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	l.logger.Info("menu refresher started", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("menu refresher stopped")
			return
		case <-ticker.C:
			_, _ = l.Load(ctx)
		}
	}
}
