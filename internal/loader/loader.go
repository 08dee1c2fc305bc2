package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/storage"
)

var ErrNoSnapshot = errors.New("menus not loaded yet")

// Source fetches a raw menu document by name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// DefaultDocuments are the file names the scraper writes for each hall.
func DefaultDocuments() map[schedule.Hall]string {
	return map[schedule.Hall]string{
		schedule.HallView:        "current-view-menu.json",
		schedule.HallNorthsider:  "current-northsider-menu.json",
		schedule.HallCornerstone: "current-cornerstone-menu.json",
	}
}

// Snapshot is one successful load of every hall's menu. It is never
// modified after Load returns it.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	Menus    map[schedule.Hall]*menu.Normalized
}

type Status struct {
	SnapshotID  string       `json:"snapshot_id,omitempty"`
	LoadedAt    time.Time    `json:"loaded_at"`
	LastAttempt time.Time    `json:"last_attempt"`
	LastError   string       `json:"last_error,omitempty"`
	Halls       []HallStatus `json:"halls,omitempty"`
}

type HallStatus struct {
	Hall  schedule.Hall `json:"hall"`
	Meals int           `json:"meals"`
}

type Loader struct {
	source    Source
	documents map[schedule.Hall]string
	logger    *zap.Logger
	now       func() time.Time

	// loadMu serialises Load so a slow older fetch cannot overwrite a
	// newer snapshot.
	loadMu sync.Mutex

	mu          sync.RWMutex
	current     *Snapshot
	lastAttempt time.Time
	lastErr     error
}

func New(source Source, documents map[schedule.Hall]string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if documents == nil {
		documents = DefaultDocuments()
	}
	return &Loader{
		source:    source,
		documents: documents,
		logger:    logger,
		now:       time.Now,
	}
}

// Load fetches every hall's document concurrently and, when all fetches
// succeed, replaces the current snapshot. A hall whose document does not
// exist is loaded as no data. Any other failure keeps the previous
// snapshot in place. Concurrent calls run one at a time.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	halls := schedule.Halls()
	menus := make([]*menu.Normalized, len(halls))

	g, gctx := errgroup.WithContext(ctx)
	for i, h := range halls {
		name, ok := l.documents[h]
		if !ok {
			continue
		}
		g.Go(func() error {
			data, err := l.source.Fetch(gctx, name)
			if errors.Is(err, storage.ErrNotFound) {
				l.logger.Warn("menu document missing", zap.String("hall", string(h)), zap.String("document", name))
				return nil
			}
			if err != nil {
				return fmt.Errorf("load %s menu: %w", h, err)
			}
			menus[i] = menu.Normalize(menu.Parse(data))
			return nil
		})
	}

	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAttempt = l.now()
	l.lastErr = err
	if err != nil {
		l.logger.Error("menu load failed", zap.Error(err))
		return nil, err
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		LoadedAt: l.lastAttempt,
		Menus:    make(map[schedule.Hall]*menu.Normalized, len(halls)),
	}
	for i, h := range halls {
		if menus[i] != nil {
			snap.Menus[h] = menus[i]
		}
	}
	l.current = snap

	l.logger.Info("menus loaded",
		zap.String("snapshot", snap.ID.String()),
		zap.Int("halls", len(snap.Menus)))
	return snap, nil
}

// Current returns the latest snapshot, or ErrNoSnapshot before the first
// successful load.
func (l *Loader) Current() (*Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.current == nil {
		if l.lastErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoSnapshot, l.lastErr)
		}
		return nil, ErrNoSnapshot
	}
	return l.current, nil
}

func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var st Status
	st.LastAttempt = l.lastAttempt
	if l.lastErr != nil {
		st.LastError = l.lastErr.Error()
	}
	if l.current != nil {
		st.SnapshotID = l.current.ID.String()
		st.LoadedAt = l.current.LoadedAt
		for _, h := range schedule.Halls() {
			n := 0
			if m := l.current.Menus[h]; m != nil {
				n = len(m.Meals)
			}
			st.Halls = append(st.Halls, HallStatus{Hall: h, Meals: n})
		}
	}
	return st
}
