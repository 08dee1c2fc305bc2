package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/loader"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/middleware"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/query"
)

type Handlers struct {
	Availability *availability.Handler
	Menus        *query.Handler
	Loader       *loader.Handler
}

func NewRouter(logger *zap.Logger, origins []string, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── SCHEDULE ─────────────────────────
	r.GET("/halls", h.Availability.Halls)
	r.GET("/schedule", h.Availability.Schedule)
	r.GET("/availability", h.Availability.Availability)

	// ───────────────────────── MENUS ─────────────────────────
	menus := r.Group("/menus")
	{
		menus.GET("", h.Menus.Menus)
		menus.GET("/status", h.Loader.Status)
		menus.POST("/reload", h.Loader.Reload)
	}

	return r
}
