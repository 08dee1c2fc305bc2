package availability

import (
	"net/http"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// --------------------------------------------------
// Halls in canonical order
// --------------------------------------------------
func (h *Handler) Halls(c *gin.Context) {
	out := make([]gin.H, 0, 3)
	for _, hall := range schedule.Halls() {
		out = append(out, gin.H{
			"id":   hall,
			"name": hall.DisplayName(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"halls": out})
}

// --------------------------------------------------
// Meals available for a hall/day pair
// --------------------------------------------------
func (h *Handler) Availability(c *gin.Context) {
	hall, ok := schedule.ParseHall(c.DefaultQuery("hall", "all"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown hall"})
		return
	}

	day, ok := schedule.ParseDay(c.DefaultQuery("day", "all"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown day"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hall":   hall,
		"day":    day,
		"closed": IsClosed(hall, day),
		"meals":  AvailableMeals(hall, day),
	})
}

// --------------------------------------------------
// Full weekly schedule
// --------------------------------------------------
func (h *Handler) Schedule(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schedule": schedule.WeeklyTable()})
}
