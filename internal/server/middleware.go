package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bestofgoa/bok/constants"
)

const (
	corsMaxAgeHours = 12

	entityTypeKey = "entityType"
)

func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"X-CSRF-Token", "Authorization", "accept", "origin",
			"Cache-Control", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeHours * time.Hour,
	})
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("http.request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// resolveEntityType canonicalizes the :entityType route segment. Unknown
// segments 404 before any handler runs.
func resolveEntityType() gin.HandlerFunc {
	return func(c *gin.Context) {
		et, ok := constants.CanonicalizeEntityType(c.Param("entityType"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown entity type"})
			return
		}
		c.Set(entityTypeKey, et)
		c.Next()
	}
}

func entityType(c *gin.Context) constants.EntityType {
	return c.MustGet(entityTypeKey).(constants.EntityType)
}
