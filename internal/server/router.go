package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Listings    *ListingHandler
	Images      *ImageHandler
	Submissions *SubmissionHandler
}

// NewRouter wires middleware and the API surface onto a gin engine.
func NewRouter(h Handlers, corsOrigins []string, pool *pgxpool.Pool, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	// CORS middleware must run before anything writes a response
	router.Use(corsMiddleware(corsOrigins))
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health/db", func(c *gin.Context) {
		if err := PingDB(c.Request.Context(), pool, logger, 2*time.Second); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// public nominations and their admin triage
	subs := api.Group("/submissions")
	subs.POST("", h.Submissions.Create)
	subs.GET("", h.Submissions.List)
	subs.GET("/:id", h.Submissions.Get)
	subs.PATCH("/:id/status", h.Submissions.Transition)
	subs.DELETE("/:id", h.Submissions.Delete)

	// everything else is scoped by entity type
	et := api.Group("/:entityType", resolveEntityType())
	et.GET("", h.Listings.List)
	et.GET("/export", h.Listings.Export)
	et.POST("/start-extraction", h.Listings.StartExtraction)
	et.GET("/extraction-status/:id", h.Listings.ExtractionStatus)
	et.POST("/check-duplicate", h.Listings.CheckDuplicate)

	et.GET("/:id/review", h.Listings.GetReview)
	et.PUT("/:id/review", h.Listings.UpdateReview)
	et.POST("/:id/publish", h.Listings.Publish)
	et.POST("/:id/unpublish", h.Listings.Unpublish)
	et.DELETE("/:id", h.Listings.Delete)

	et.GET("/:id/images", h.Images.List)
	et.POST("/:id/images", h.Images.Add)
	et.PUT("/:id/images/order", h.Images.Reorder)
	et.PATCH("/:id/images/:imageID", h.Images.Moderate)
	et.PUT("/:id/images/:imageID/alt-text", h.Images.UpdateAltText)
	et.PUT("/:id/images/:imageID/hero", h.Images.SetHero)
	et.DELETE("/:id/images/:imageID", h.Images.Delete)

	return router
}
