package query

import (
	"sync"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

type cacheKey struct {
	scope schedule.Hall
	state filter.State
}

// Cache memoises BuildView for the current snapshot. Views for an older
// snapshot are dropped as soon as a newer snapshot id is seen.
type Cache struct {
	mu       sync.Mutex
	snapshot string
	views    map[cacheKey][]HallSection
}

func NewCache() *Cache {
	return &Cache{views: make(map[cacheKey][]HallSection)}
}

// View returns the cached sections for (snapshotID, scope, f), building
// them on first use. Callers must not modify the result.
func (c *Cache) View(snapshotID string, scope schedule.Hall, menus Menus, f filter.State) []HallSection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snapshotID != c.snapshot {
		c.snapshot = snapshotID
		c.views = make(map[cacheKey][]HallSection)
	}

	key := cacheKey{scope: scope, state: f}
	if v, ok := c.views[key]; ok {
		return v
	}

	v := BuildView(scope, menus, f)
	c.views[key] = v
	return v
}
