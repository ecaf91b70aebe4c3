package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/config"
	"github.com/arvemy/YUScheduler/backend/internal/api/handler"
	"github.com/arvemy/YUScheduler/backend/internal/api/middleware"
	"github.com/arvemy/YUScheduler/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with all routes and middleware attached.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	// Per-route limits follow the public deployment: cheap catalog reads get
	// generous windows, generation and export are the expensive calls.
	api := r.Group("/api")
	{
		api.GET("/terms", middleware.RateLimit(rdb, 300, time.Hour), h.Catalog.ListTerms)
		api.GET("/courses", middleware.RateLimit(rdb, 300, time.Hour), h.Catalog.ListCourses)
		api.GET("/sections", middleware.RateLimit(rdb, 200, time.Hour), h.Catalog.ListSections)

		api.POST("/generate_schedule", middleware.RateLimit(rdb, 30, time.Hour), h.Schedule.GenerateSchedule)

		export := api.Group("/export")
		export.Use(middleware.RateLimit(rdb, 60, time.Hour))
		{
			export.POST("/schedule.xlsx", h.Export.ExportXLSX)
			export.POST("/schedule.ics", h.Export.ExportICS)
		}
	}

	return r
}
