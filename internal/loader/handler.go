package loader

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	loader *Loader
}

func NewHandler(loader *Loader) *Handler {
	return &Handler{loader: loader}
}

// --------------------------------------------------
// Load status (polled by the front end)
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.loader.Status())
}

// --------------------------------------------------
// Reload menus (retry after a failed load)
// --------------------------------------------------
func (h *Handler) Reload(c *gin.Context) {
	snap, err := h.loader.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID.String(),
		"loaded_at":   snap.LoadedAt,
	})
}
