package query

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/loader"
)

// Snapshots supplies the menus currently being served.
type Snapshots interface {
	Current() (*loader.Snapshot, error)
}

type Handler struct {
	snapshots Snapshots
	cache     *Cache
	now       func() time.Time
}

func NewHandler(snapshots Snapshots, cache *Cache) *Handler {
	if cache == nil {
		cache = NewCache()
	}
	return &Handler{snapshots: snapshots, cache: cache, now: time.Now}
}

type sectionResponse struct {
	HallSection
	Caption
}

// --------------------------------------------------
// Menus for the current filter selection
// --------------------------------------------------
func (h *Handler) Menus(c *gin.Context) {
	f, err := filter.ParseState(c.Query("hall"), c.Query("day"), c.Query("meal"), h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f = filter.Revalidate(f)

	snap, err := h.snapshots.Current()
	if errors.Is(err, loader.ErrNoSnapshot) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sections := h.cache.View(snap.ID.String(), f.Hall, snap.Menus, f)

	out := make([]sectionResponse, 0, len(sections))
	for _, sec := range sections {
		out = append(out, sectionResponse{HallSection: sec, Caption: Describe(sec, f)})
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":       f,
		"meal_options": filter.MealOptions(f),
		"snapshot_id":  snap.ID.String(),
		"loaded_at":    snap.LoadedAt,
		"sections":     out,
		"quick_nav":    QuickNav(f.Hall),
	})
}
